package logging

import (
	"bytes"
	"testing"
)

func TestDebugGatedByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	SetDebug(false)
	Debug().Msg("should not appear")
	if buf.Len() > 0 {
		t.Errorf("debug output when level raised to info: %s", buf.String())
	}

	SetDebug(true)
	Debug().Msg("should appear")
	if !bytes.Contains(buf.Bytes(), []byte("should appear")) {
		t.Errorf("expected debug output, got: %s", buf.String())
	}
}

func TestWithRunIDTagsEvents(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})
	SetDebug(true)

	l := WithRunID("abc-123")
	l.Info().Msg("hello")

	if !bytes.Contains(buf.Bytes(), []byte("abc-123")) {
		t.Errorf("expected run_id in output, got: %s", buf.String())
	}
}
