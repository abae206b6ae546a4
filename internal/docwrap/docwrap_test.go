package docwrap

import (
	"strings"
	"testing"

	"github.com/Aloso/to-html/internal/render"
)

func TestWrapProducesFullDocument(t *testing.T) {
	out := Wrap(`<span class="red">hi</span>`, "", render.Dark)
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("expected a full document, got %q", out)
	}
	if !strings.Contains(out, `<pre class="terminal dark">`) {
		t.Errorf("expected terminal/theme classes on <pre>, got %q", out)
	}
	if !strings.Contains(out, ".red { color: #") {
		t.Errorf("expected embedded stylesheet with named color class, got %q", out)
	}
}

func TestWrapHonorsPrefix(t *testing.T) {
	out := Wrap("x", "th-", render.Light)
	if !strings.Contains(out, `<pre class="th-terminal th-light">`) {
		t.Errorf("prefix not applied to pre classes: %q", out)
	}
	if !strings.Contains(out, ".th-red {") {
		t.Errorf("prefix not applied to stylesheet classes: %q", out)
	}
}

func TestFragmentOmitsDocumentShell(t *testing.T) {
	out := Fragment("hi", "", render.Dark)
	if strings.Contains(out, "<!DOCTYPE") || strings.Contains(out, "<style>") {
		t.Errorf("fragment should not include document shell: %q", out)
	}
	if !strings.HasPrefix(out, `<pre class="terminal dark">`) || !strings.HasSuffix(out, "</pre>") {
		t.Errorf("fragment malformed: %q", out)
	}
}
