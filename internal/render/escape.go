package render

import "strings"

// EscapeHTML writes s to buf with &, < and > escaped for safe inclusion in
// an HTML text node. Quotes are left alone: this is a text-node escaper
// only, never used for attribute values (the renderer builds those itself
// from fixed strings).
//
// It scans for the next special byte and copies the run before it in one
// operation, rather than branching per byte, since this is the dominant
// hot path for large inputs.
func EscapeHTML(buf *strings.Builder, s string) {
	for {
		i := strings.IndexAny(s, "&<>")
		if i < 0 {
			buf.WriteString(s)
			return
		}
		buf.WriteString(s[:i])
		switch s[i] {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		}
		s = s[i+1:]
	}
}

// NeedsEscape reports whether s contains any byte EscapeHTML would rewrite,
// letting callers skip allocating/scanning twice when it doesn't.
func NeedsEscape(s string) bool {
	return strings.ContainsAny(s, "&<>")
}
