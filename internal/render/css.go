package render

import (
	"fmt"
	"strings"

	"github.com/Aloso/to-html/internal/style"
)

// resolved is a fg or bg color as decided for a single span: either a named
// CSS class suffix, or a concrete RGB value to be written inline. explicit
// is false when the value was materialized from the theme default rather
// than set by an SGR operation — callers use it to decide whether the
// color needs to be emitted at all.
type resolved struct {
	explicit bool
	class    string // non-empty for Named colors
	rgb      RGB
	isRGB    bool
}

func materializeFg(c *style.Color, t Theme) resolved {
	if c == nil {
		return resolved{explicit: false, rgb: t.DefaultFg, isRGB: true}
	}
	cls, rgb, isRGB := ResolveColor(*c, t)
	return resolved{explicit: true, class: cls, rgb: rgb, isRGB: isRGB}
}

func materializeBg(c *style.Color, t Theme) resolved {
	if c == nil {
		return resolved{explicit: false, rgb: t.DefaultBg, isRGB: true}
	}
	cls, rgb, isRGB := ResolveColor(*c, t)
	return resolved{explicit: true, class: cls, rgb: rgb, isRGB: isRGB}
}

// classesAndStyle renders an Effective style into the CSS classes (without
// prefix) and optional inline style declarations it requires. Returns
// (nil, "") for a default style, per the "span whose effective style equals
// default is not emitted" optimizer rule — callers use this to recognize
// and skip such spans before ever opening them.
func classesAndStyle(eff style.Effective, t Theme) (classes []string, inlineStyle string) {
	switch eff.Intensity {
	case style.IntensityBold:
		classes = append(classes, "bold")
	case style.IntensityFaint:
		classes = append(classes, "faint")
	}
	if eff.Italic {
		classes = append(classes, "italic")
	}
	switch eff.Underline {
	case style.UnderlineSingle:
		classes = append(classes, "underline")
	case style.UnderlineDouble:
		classes = append(classes, "double-underline")
	}
	if eff.Overline {
		classes = append(classes, "overline")
	}
	if eff.Strike {
		classes = append(classes, "strike")
	}

	fg := materializeFg(eff.Fg, t)
	bg := materializeBg(eff.Bg, t)
	if eff.Reverse {
		fg, bg = bg, fg
	}

	var decls []string
	if eff.Reverse || fg.explicit {
		if fg.isRGB {
			decls = append(decls, fmt.Sprintf("color:#%02x%02x%02x", fg.rgb.R, fg.rgb.G, fg.rgb.B))
		} else {
			classes = append(classes, fg.class)
		}
	}
	if eff.Reverse || bg.explicit {
		if bg.isRGB {
			decls = append(decls, fmt.Sprintf("background:#%02x%02x%02x", bg.rgb.R, bg.rgb.G, bg.rgb.B))
		} else {
			classes = append(classes, "bg-"+bg.class)
		}
	}

	return classes, strings.Join(decls, ";")
}
