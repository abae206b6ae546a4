package render

// optimize fuses adjacent spans with byte-identical rendered attributes and
// drops spans left empty by upstream segment slicing. Default-style spans
// (no classes, no inline style) go through this pass like any other, and
// adjacent ones merge too; Render writes them as bare text afterwards, so
// this pass only has to handle adjacency, not the "is it default" check.
//
// This must be semantically inert: a browser rendering the optimized HTML
// assigns the same style to every character as the unoptimized version
// would. Merging only ever joins spans that already render identically,
// and dropping only ever removes spans with no text, so the invariant
// holds by construction rather than by a separate proof step.
func optimize(spans []span) []span {
	out := make([]span, 0, len(spans))
	for _, sp := range spans {
		if sp.text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].key() == sp.key() {
			out[n-1].text += sp.text
			continue
		}
		out = append(out, sp)
	}
	return out
}
