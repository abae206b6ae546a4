package render

import (
	"sort"
	"strings"

	"github.com/Aloso/to-html/internal/style"
)

// Segment is one run of text together with the style that was in effect
// for its whole extent. The caller (the public converter) is responsible
// for slicing the input into segments at each point the style stack
// changes; the renderer never looks at the stack itself.
type Segment struct {
	Style style.Effective
	Text  string
}

// span is an intermediate, already-classified unit: a segment's style
// rendered into class names and an inline style string, carried alongside
// its text so the optimizer can merge and drop before any HTML is written.
type span struct {
	classes []string
	style   string
	text    string
}

// key identifies spans that are safe to merge: identical rendered
// attributes regardless of source segment boundaries.
func (s span) key() string {
	cs := append([]string(nil), s.classes...)
	sort.Strings(cs)
	return strings.Join(cs, " ") + "\x00" + s.style
}

func (s span) isDefault() bool {
	return len(s.classes) == 0 && s.style == ""
}

// Options controls how segments are turned into HTML.
type Options struct {
	Prefix       string
	Theme        Theme
	SkipEscape   bool
	SkipOptimize bool
}

// Render converts a slice of segments into HTML span markup, applying the
// reverse-video rule, class/inline-style selection, escaping and (unless
// disabled) the optimizer pass.
func Render(segments []Segment, opts Options) string {
	spans := make([]span, 0, len(segments))
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		classes, inline := classesAndStyle(seg.Style, opts.Theme)
		spans = append(spans, span{classes: classes, style: inline, text: seg.Text})
	}

	if !opts.SkipOptimize {
		spans = optimize(spans)
	}

	var buf strings.Builder
	buf.Grow(maxInt(64, totalLen(spans)))
	for _, sp := range spans {
		if sp.text == "" {
			continue
		}
		if sp.isDefault() {
			writeText(&buf, sp.text, opts.SkipEscape)
			continue
		}
		writeOpenTag(&buf, sp, opts.Prefix)
		writeText(&buf, sp.text, opts.SkipEscape)
		buf.WriteString("</span>")
	}
	return buf.String()
}

func writeOpenTag(buf *strings.Builder, sp span, prefix string) {
	buf.WriteString("<span")
	if len(sp.classes) > 0 {
		buf.WriteString(` class="`)
		for i, c := range sp.classes {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(prefix)
			buf.WriteString(c)
		}
		buf.WriteByte('"')
	}
	if sp.style != "" {
		buf.WriteString(` style="`)
		buf.WriteString(sp.style)
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
}

func writeText(buf *strings.Builder, text string, skipEscape bool) {
	if skipEscape {
		buf.WriteString(text)
		return
	}
	EscapeHTML(buf, text)
}

func totalLen(spans []span) int {
	n := 0
	for _, s := range spans {
		n += len(s.text)
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
