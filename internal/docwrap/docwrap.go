// Package docwrap assembles the optional full-document HTML output: the
// converted <pre> content wrapped in a minimal document with an embedded
// stylesheet matching the chosen theme.
package docwrap

import (
	"fmt"
	"strings"

	"github.com/Aloso/to-html/internal/render"
)

// Wrap returns a standalone HTML document containing body as the content
// of a themed <pre> element, with an embedded stylesheet for the 16 named
// colors and the style classes the renderer emits.
func Wrap(body string, prefix string, theme render.Theme) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	writeStylesheet(&b, prefix, theme)
	b.WriteString("</style>\n</head>\n<body>\n<pre class=\"")
	fmt.Fprintf(&b, "%sterminal %s%s", prefix, prefix, theme.Name)
	b.WriteString("\">")
	b.WriteString(body)
	b.WriteString("</pre>\n</body>\n</html>\n")
	return b.String()
}

// Fragment returns just the <pre> element, for callers that don't want a
// full document (the --doc flag is off).
func Fragment(body string, prefix string, theme render.Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<pre class=\"%sterminal %s%s\">%s</pre>", prefix, prefix, theme.Name, body)
	return b.String()
}

func writeStylesheet(b *strings.Builder, prefix string, theme render.Theme) {
	fmt.Fprintf(b, ".%sterminal { font-family: monospace; white-space: pre; }\n", prefix)
	fmt.Fprintf(b, ".%s%s { background: #%s; color: #%s; }\n",
		prefix, theme.Name, hex(theme.DefaultBg), hex(theme.DefaultFg))

	fmt.Fprintf(b, ".%sbold { font-weight: bold; }\n", prefix)
	fmt.Fprintf(b, ".%sfaint { opacity: 0.6; }\n", prefix)
	fmt.Fprintf(b, ".%sitalic { font-style: italic; }\n", prefix)
	fmt.Fprintf(b, ".%sunderline { text-decoration: underline; }\n", prefix)
	fmt.Fprintf(b, ".%sdouble-underline { text-decoration: underline double; }\n", prefix)
	fmt.Fprintf(b, ".%soverline { text-decoration: overline; }\n", prefix)
	fmt.Fprintf(b, ".%sstrike { text-decoration: line-through; }\n", prefix)

	for i := 0; i < 16; i++ {
		cls := theme.ClassFor(uint8(i))
		rgb := theme.RGBFor(uint8(i))
		fmt.Fprintf(b, ".%s%s { color: #%s; }\n", prefix, cls, hex(rgb))
		fmt.Fprintf(b, ".%sbg-%s { background: #%s; }\n", prefix, cls, hex(rgb))
	}
}

func hex(c render.RGB) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
