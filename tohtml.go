// Package tohtml converts a byte stream carrying ANSI/SGR escape sequences
// into equivalent, minimized HTML. It is pure and stateless: a Converter is
// immutable once built, Convert performs no I/O, and nothing is shared
// between calls.
package tohtml

import (
	"github.com/Aloso/to-html/internal/ansilex"
	"github.com/Aloso/to-html/internal/render"
	"github.com/Aloso/to-html/internal/style"
)

// Option configures a Converter at construction time.
type Option func(*Converter)

// Converter holds conversion options. The zero value, or the value
// returned by New with no options, renders with HTML escaping and the
// optimizer both enabled, an empty class prefix, and the dark theme.
type Converter struct {
	skipEscape     bool
	skipOptimize   bool
	prefix         string
	theme          render.Theme
	fourBitPalette *render.Palette16
}

// New builds a Converter from the given options.
func New(opts ...Option) Converter {
	c := Converter{theme: render.Dark}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSkipEscape disables HTML-escaping of text payloads. The caller is
// asserting the input contains no HTML-significant bytes.
func WithSkipEscape(skip bool) Option {
	return func(c *Converter) { c.skipEscape = skip }
}

// WithSkipOptimize disables the span-merging optimizer pass, emitting the
// renderer's raw, unmerged span-per-style-change output.
func WithSkipOptimize(skip bool) Option {
	return func(c *Converter) { c.skipOptimize = skip }
}

// WithPrefix sets the CSS class prefix applied to every emitted class.
func WithPrefix(prefix string) Option {
	return func(c *Converter) { c.prefix = prefix }
}

// WithTheme sets the default fg/bg and named-color palette used when no
// four-bit palette override is supplied.
func WithTheme(name string) Option {
	return func(c *Converter) { c.theme = render.ByName(name) }
}

// WithFourBitPalette overrides the 16 named-color RGB values independently
// of the chosen theme's defaults. Named colors still render as CSS classes;
// this only affects callers who need the concrete RGB values (e.g. for a
// generated stylesheet), not the class names the spans carry.
func WithFourBitPalette(p render.Palette16) Option {
	return func(c *Converter) {
		cp := p
		c.fourBitPalette = &cp
	}
}

// Theme returns the theme this converter renders against, including any
// four-bit-palette override — used by docwrap to generate a matching
// embedded stylesheet.
func (c Converter) Theme() render.Theme {
	t := c.theme
	if t.Name == "" {
		t = render.Dark
	}
	if c.fourBitPalette != nil {
		t.Palette = *c.fourBitPalette
	}
	return t
}

// Convert renders input to HTML. It is pure: no I/O, no shared state, and
// safe to call concurrently from multiple goroutines on the same or
// different Converter values.
func (c Converter) Convert(input string) string {
	segments := segmentize(input)
	return render.Render(segments, render.Options{
		Prefix:       c.prefix,
		Theme:        c.Theme(),
		SkipEscape:   c.skipEscape,
		SkipOptimize: c.skipOptimize,
	})
}

// segmentize walks the lexer token stream, drives the style stack, and
// slices the text tokens into segments each tagged with the effective
// style in force for their whole extent. It takes the "close the outer
// span and open a new one on any change" reconciliation policy:
// correctness of the final HTML relies on the optimizer to collapse the
// runs it produces back down, not on this pass doing any
// merging itself.
func segmentize(input string) []render.Segment {
	stack := style.NewStack()
	lexer := ansilex.New([]byte(input))

	var segments []render.Segment
	for {
		tok, ok := lexer.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case ansilex.Text:
			segments = append(segments, render.Segment{
				Style: stack.Snapshot(),
				Text:  string(tok.Bytes),
			})
		case ansilex.SGR:
			if !tok.Invalid {
				style.Apply(stack, tok.Params)
			}
		case ansilex.OSC, ansilex.Unknown:
			// Payload discarded; no effect on the stack.
		}
	}
	return segments
}
