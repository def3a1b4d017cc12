package glyph

import "strconv"

// Kind discriminates the Symbol variants.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDigit
	KindEllipsis
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindEllipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// Symbol is the classification of one glyph. Unknown symbols keep the glyph
// they were decoded from so callers can report it.
type Symbol struct {
	Kind  Kind
	Digit uint8
	Glyph Glyph
}

// Digit returns the symbol for d, which must be in 0..9.
func Digit(d uint8) Symbol { return Symbol{Kind: KindDigit, Digit: d} }

// Ellipsis is the "..." marker.
var Ellipsis = Symbol{Kind: KindEllipsis}

// Unknown wraps an unrecognized glyph.
func Unknown(g Glyph) Symbol { return Symbol{Kind: KindUnknown, Glyph: g.Clone()} }

// IsUnknown reports whether s could not be classified.
func (s Symbol) IsUnknown() bool { return s.Kind == KindUnknown }

// String returns the transcript form: the digit, "..." or "?".
func (s Symbol) String() string {
	switch s.Kind {
	case KindDigit:
		return strconv.Itoa(int(s.Digit))
	case KindEllipsis:
		return "..."
	default:
		return "?"
	}
}
