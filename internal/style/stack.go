package style

// Stack is the ordered sequence of currently-active attributes, most
// recently applied at the top. It is implemented as a flat slice rather
// than a tree of nested scopes: the ANSI stream it models is not
// well-nested (RemoveCategory can delete an entry from the middle), so a
// flat ordered list with category lookup matches the semantics directly
// instead of requiring a restructure on every operation.
type Stack struct {
	entries []Attribute
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push adds an attribute to the top of the stack. If an entry of the same
// category already exists anywhere in the stack it is removed first — even
// when it is exactly equal to a — so that re-applying an identical style
// after intervening changes still moves it back to the top and takes
// effect for subsequent text.
func (s *Stack) Push(a Attribute) {
	s.RemoveCategory(a.Category())
	s.entries = append(s.entries, a)
}

// RemoveCategory deletes the entry of category c, if any, in place. It
// never reorders the surviving entries: rebuilding the stack via pop/push
// would reverse the relative order of everything above the removed entry,
// which would make e.g. "underline, red, blue, underline-off" render blue
// before red instead of after. A direct in-place delete preserves order.
func (s *Stack) RemoveCategory(c Category) {
	for i, e := range s.entries {
		if e.Category() == c {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Snapshot projects the stack into a render-ready Effective style: one slot
// per category, reflecting whatever is currently on the stack.
func (s *Stack) Snapshot() Effective {
	var e Effective
	for _, a := range s.entries {
		switch a.Kind {
		case Bold:
			e.Intensity = IntensityBold
		case Faint:
			e.Intensity = IntensityFaint
		case Italic:
			e.Italic = true
		case Underline:
			e.Underline = UnderlineSingle
		case DoubleUnderline:
			e.Underline = UnderlineDouble
		case Overline:
			e.Overline = true
		case CrossedOut:
			e.Strike = true
		case Reverse:
			e.Reverse = true
		case Fg:
			c := a.Color
			e.Fg = &c
		case Bg:
			c := a.Color
			e.Bg = &c
		}
	}
	return e
}

// IntensityState is the category-Intensity projection: none, bold or faint.
type IntensityState int

const (
	IntensityNone IntensityState = iota
	IntensityBold
	IntensityFaint
)

// UnderlineState is the category-Underline projection.
type UnderlineState int

const (
	UnderlineNone UnderlineState = iota
	UnderlineSingle
	UnderlineDouble
)

// Effective is the render-ready projection of a Stack: one entry per
// category, pre-reverse-video. Color fields are nil when no entry of that
// category is present.
type Effective struct {
	Intensity IntensityState
	Italic    bool
	Underline UnderlineState
	Overline  bool
	Strike    bool
	Reverse   bool
	Fg        *Color
	Bg        *Color
}

// Equal reports whether two snapshots describe the same rendered style.
func (e Effective) Equal(o Effective) bool {
	if e.Intensity != o.Intensity || e.Italic != o.Italic || e.Underline != o.Underline ||
		e.Overline != o.Overline || e.Strike != o.Strike || e.Reverse != o.Reverse {
		return false
	}
	if !colorPtrEqual(e.Fg, o.Fg) || !colorPtrEqual(e.Bg, o.Bg) {
		return false
	}
	return true
}

// IsDefault reports whether this snapshot carries no attributes at all.
func (e Effective) IsDefault() bool {
	return e.Equal(Effective{})
}

func colorPtrEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
