// Package render turns a style.Stack timeline into minimized, HTML-escaped
// span markup: CSS class naming, the 16-color theme palette, truecolor
// fallback, the reverse-video rule, and the optimizer pass that merges and
// drops spans.
package render

import "github.com/Aloso/to-html/internal/style"

// NamedSlot is a slot in the 16-entry named color palette, in SGR order:
// 0-7 are the standard colors, 8-15 are their "bright" counterparts.
type NamedSlot int

const (
	Black NamedSlot = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var namedSlotClass = [16]string{
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightBlack:   "bright-black",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

// Palette16 maps the 16 named color slots to concrete RGB values. Spans
// always carry Named colors as CSS classes; these values back the generated
// stylesheet and can be overridden via Converter.WithFourBitPalette.
type Palette16 [16]RGB

// RGB is a concrete 24-bit color value.
type RGB struct{ R, G, B uint8 }

// Theme carries the default foreground/background and the 16-slot named
// palette used when rendering Named colors as classes.
type Theme struct {
	Name      string
	DefaultFg RGB
	DefaultBg RGB
	Palette   Palette16
}

// Dark is the built-in dark-background theme, modeled on a standard xterm
// palette.
var Dark = Theme{
	Name:      "dark",
	DefaultFg: RGB{0xe0, 0xe0, 0xe0},
	DefaultBg: RGB{0x1a, 0x1a, 0x1a},
	Palette: Palette16{
		Black:         {0x00, 0x00, 0x00},
		Red:           {0xcd, 0x31, 0x31},
		Green:         {0x0d, 0xbc, 0x79},
		Yellow:        {0xe5, 0xe5, 0x10},
		Blue:          {0x24, 0x72, 0xc8},
		Magenta:       {0xbc, 0x3f, 0xbc},
		Cyan:          {0x11, 0xa8, 0xcd},
		White:         {0xe5, 0xe5, 0xe5},
		BrightBlack:   {0x66, 0x66, 0x66},
		BrightRed:     {0xf1, 0x4c, 0x4c},
		BrightGreen:   {0x23, 0xd1, 0x8b},
		BrightYellow:  {0xf5, 0xf5, 0x43},
		BrightBlue:    {0x3b, 0x8e, 0xea},
		BrightMagenta: {0xd6, 0x70, 0xd6},
		BrightCyan:    {0x29, 0xb8, 0xdb},
		BrightWhite:   {0xe5, 0xe5, 0xe5},
	},
}

// Light is the built-in light-background theme.
var Light = Theme{
	Name:      "light",
	DefaultFg: RGB{0x1a, 0x1a, 0x1a},
	DefaultBg: RGB{0xf5, 0xf5, 0xf5},
	Palette: Palette16{
		Black:         {0x00, 0x00, 0x00},
		Red:           {0xab, 0x1f, 0x1f},
		Green:         {0x0a, 0x8a, 0x5c},
		Yellow:        {0xb0, 0x8c, 0x00},
		Blue:          {0x1a, 0x52, 0x9e},
		Magenta:       {0x8e, 0x2d, 0x8e},
		Cyan:          {0x0c, 0x7d, 0x95},
		White:         {0x6b, 0x6b, 0x6b},
		BrightBlack:   {0x40, 0x40, 0x40},
		BrightRed:     {0xd1, 0x32, 0x32},
		BrightGreen:   {0x15, 0xab, 0x76},
		BrightYellow:  {0xcf, 0xa7, 0x00},
		BrightBlue:    {0x26, 0x6b, 0xc4},
		BrightMagenta: {0xaa, 0x3f, 0xaa},
		BrightCyan:    {0x12, 0x96, 0xb4},
		BrightWhite:   {0x1a, 0x1a, 0x1a},
	},
}

// ByName resolves a theme by its config/flag name, falling back to Dark.
func ByName(name string) Theme {
	if name == "light" {
		return Light
	}
	return Dark
}

// ClassFor returns the CSS class name for a Named color slot under this
// theme's palette, with no prefix applied.
func (t Theme) ClassFor(idx uint8) string {
	return namedSlotClass[idx%16]
}

// RGBFor returns the concrete color this theme assigns to a Named slot.
func (t Theme) RGBFor(idx uint8) RGB {
	return t.Palette[idx%16]
}

// ResolveColor turns a style.Color into either a CSS class suffix (for
// Named colors, whatever the palette) or a concrete RGB (for Palette256 and
// RGB colors). isRGB is false when cls should be used; true means rgb should
// be used.
func ResolveColor(c style.Color, t Theme) (cls string, rgb RGB, isRGB bool) {
	switch c.Kind {
	case style.Named:
		return t.ClassFor(c.Index), RGB{}, false
	case style.Palette256:
		return "", xterm256ToRGB(c.Index), true
	case style.RGB:
		return "", RGB{c.R, c.G, c.B}, true
	default:
		return "", RGB{}, false
	}
}

// xterm256ToRGB converts an 8-bit xterm palette index (16..255; 0..15 are
// normalized to Named before this is ever reached) to a concrete RGB value:
// 16..231 is a 6x6x6 color cube, 232..255 is a 24-step grayscale ramp.
func xterm256ToRGB(idx uint8) RGB {
	if idx < 16 {
		return Dark.RGBFor(idx)
	}
	if idx >= 232 {
		level := uint8(8 + (idx-232)*10)
		return RGB{level, level, level}
	}
	i := idx - 16
	r := cubeLevel(i / 36)
	g := cubeLevel((i / 6) % 6)
	b := cubeLevel(i % 6)
	return RGB{r, g, b}
}

func cubeLevel(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return 55 + n*40
}
