package style

// Apply consumes an SGR parameter sequence left-to-right and applies each
// logical operation to the stack. Most operations consume a single
// parameter; the two color-expansion forms (38/48 ; 5 ; N and 38/48 ; 2 ;
// R ; G ; B) consume 3 or 5. An empty sequence is the reset form and clears
// the stack, matching a bare `ESC[m`.
func Apply(s *Stack, params []int) {
	if len(params) == 0 {
		s.Clear()
		return
	}

	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s.Clear()
		case p == 1:
			s.Push(Attribute{Kind: Bold})
		case p == 2:
			s.Push(Attribute{Kind: Faint})
		case p == 3:
			s.Push(Attribute{Kind: Italic})
		case p == 4:
			s.Push(Attribute{Kind: Underline})
		case p == 7:
			s.Push(Attribute{Kind: Reverse})
		case p == 9:
			s.Push(Attribute{Kind: CrossedOut})
		case p == 21:
			s.Push(Attribute{Kind: DoubleUnderline})
		case p == 22:
			s.RemoveCategory(CategoryIntensity)
		case p == 23:
			s.RemoveCategory(CategoryItalic)
		case p == 24:
			s.RemoveCategory(CategoryUnderline)
		case p == 27:
			s.RemoveCategory(CategoryReverse)
		case p == 29:
			s.RemoveCategory(CategoryStrike)
		case p >= 30 && p <= 37:
			s.Push(Attribute{Kind: Fg, Color: NewNamed(uint8(p - 30))})
		case p == 38:
			color, consumed := parseExtendedColor(params[i+1:])
			if color != nil {
				s.Push(Attribute{Kind: Fg, Color: *color})
			}
			i += consumed
		case p == 39:
			s.RemoveCategory(CategoryForeground)
		case p >= 40 && p <= 47:
			s.Push(Attribute{Kind: Bg, Color: NewNamed(uint8(p - 40))})
		case p == 48:
			color, consumed := parseExtendedColor(params[i+1:])
			if color != nil {
				s.Push(Attribute{Kind: Bg, Color: *color})
			}
			i += consumed
		case p == 49:
			s.RemoveCategory(CategoryBackground)
		case p == 53:
			s.Push(Attribute{Kind: Overline})
		case p == 55:
			s.RemoveCategory(CategoryOverline)
		default:
			// Unrecognized parameter: skip and continue.
		}
	}
}

// parseExtendedColor reads the mode selector and operands of a 38/48
// extended-color sequence from rest (the parameters following the 38 or 48
// itself). It returns the decoded color and how many of rest's entries were
// consumed. A malformed or truncated sequence returns a nil color: with no
// mode selector nothing is consumed, an unknown selector consumes just the
// selector, and a truncated 5 or 2 form consumes whatever operands remain.
func parseExtendedColor(rest []int) (*Color, int) {
	if len(rest) == 0 {
		return nil, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return nil, 1
		}
		c := NewPalette256(uint8(rest[1]))
		return &c, 2
	case 2:
		if len(rest) < 4 {
			return nil, len(rest)
		}
		c := NewRGB(uint8(rest[1]), uint8(rest[2]), uint8(rest[3]))
		return &c, 4
	default:
		return nil, 1
	}
}
