package ansilex

import (
	"bytes"
	"testing"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()
	l := New([]byte(input))
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexerTextAndSGR(t *testing.T) {
	toks := collect(t, "he\x1b[32mllo")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != Text || string(toks[0].Bytes) != "he" {
		t.Errorf("token 0 = %+v", toks[0])
	}
	if toks[1].Kind != SGR || toks[1].Invalid {
		t.Errorf("token 1 = %+v", toks[1])
	}
	if got := toks[1].Params; len(got) != 1 || got[0] != 32 {
		t.Errorf("params = %v, want [32]", got)
	}
	if toks[2].Kind != Text || string(toks[2].Bytes) != "llo" {
		t.Errorf("token 2 = %+v", toks[2])
	}
}

func TestLexerTrailingSemicolonTolerated(t *testing.T) {
	toks := collect(t, "\x1b[31;mX")
	if len(toks) != 2 || toks[0].Kind != SGR {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	if got := toks[0].Params; len(got) != 1 || got[0] != 31 {
		t.Errorf("params = %v, want [31]", got)
	}
}

func TestLexerEmptySGRIsReset(t *testing.T) {
	toks := collect(t, "\x1b[mX")
	if len(toks) != 2 || toks[0].Kind != SGR || toks[0].Invalid {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	if len(toks[0].Params) != 0 {
		t.Errorf("params = %v, want empty", toks[0].Params)
	}
}

func TestLexerOSCStripped(t *testing.T) {
	toks := collect(t, "\x1b]0;title\x07hello")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != OSC {
		t.Errorf("token 0 kind = %v, want OSC", toks[0].Kind)
	}
	if toks[1].Kind != Text || string(toks[1].Bytes) != "hello" {
		t.Errorf("token 1 = %+v", toks[1])
	}
}

func TestLexerOSCUnterminatedConsumesToEnd(t *testing.T) {
	toks := collect(t, "\x1b]0;title")
	if len(toks) != 1 || toks[0].Kind != OSC {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestLexerUnknownEscapeSkipped(t *testing.T) {
	toks := collect(t, "a\x1bMb")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[1].Kind != Unknown {
		t.Errorf("token 1 kind = %v, want Unknown", toks[1].Kind)
	}
}

func TestLexerBareEscAtEndOfInput(t *testing.T) {
	toks := collect(t, "abc\x1b")
	if len(toks) != 1 || toks[0].Kind != Text || string(toks[0].Bytes) != "abc" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestLexerUnknownCSIFinalByteSkipped(t *testing.T) {
	toks := collect(t, "x\x1b[2Jy")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[1].Kind != Unknown {
		t.Errorf("token 1 kind = %v, want Unknown", toks[1].Kind)
	}
	if string(toks[2].Bytes) != "y" {
		t.Errorf("token 2 = %+v", toks[2])
	}
}

func TestLexerParamOverflowMarksInvalid(t *testing.T) {
	toks := collect(t, "\x1b[9999mX")
	if len(toks) != 2 || toks[0].Kind != SGR || !toks[0].Invalid {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

// TestLexerTextSlicesConcatenate is the fuzzing contract: every Text
// slice is a contiguous range of the original input, and the Text slices
// concatenate back to the non-escape bytes of the input.
func TestLexerTextSlicesConcatenate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello", "hello"},
		{"he\x1b[32mllo\x1b[0m world", "hello world"},
		{"\x1b]0;title\x07plain\x1b[31;mtext", "plaintext"},
		{"\x1b", ""},
		{"", ""},
		{string([]byte{esc, '[', '3', '1', 'm', 'a', 0xff, 'b'}), "a\xffb"},
	}
	for _, tc := range cases {
		in := tc.in
		var buf bytes.Buffer
		toks := collect(t, in)
		for _, tok := range toks {
			if tok.Kind == Text {
				buf.Write(tok.Bytes)
			}
		}
		if buf.String() != tc.want {
			t.Errorf("text of %q = %q, want %q", in, buf.String(), tc.want)
		}
		// Re-lexing the same input must reconstruct the same text.
		again := collect(t, in)
		var buf2 bytes.Buffer
		for _, tok := range again {
			if tok.Kind == Text {
				buf2.Write(tok.Bytes)
			}
		}
		if buf.String() != buf2.String() {
			t.Errorf("non-deterministic text reconstruction for %q", in)
		}
	}
}
