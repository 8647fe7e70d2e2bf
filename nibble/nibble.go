package nibble

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("nibble")

// Type is a class of nibble values.
type Type struct {
	// Set has bit n set when the nibble value n belongs to the type.
	Set  uint16
	Abbr string
}

// Match returns true if this type contains the given nibble.
func (t Type) Match(n byte) bool {
	return n <= 0x0f && t.Set&(1<<n) != 0
}

type types []Type

func (ts types) Match(n byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(n) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown = Type{}
	Digit   = Type{0b_0000_0011_1111_1111, "d"}
	Plus    = Type{0b_1101_0100_0000_0000, "+"}
	Minus   = Type{0b_0010_1000_0000_0000, "-"}

	Types = types{
		Digit,
		Plus,
		Minus,
	}
)

// Split returns the high and low nibble of b.
func Split(b byte) (high, low byte) {
	return b >> 4, b & 0x0f
}

// Join packs two nibbles into a byte. Bits above the low four of each
// argument are discarded.
func Join(high, low byte) byte {
	return high<<4 | low&0x0f
}

// IsDigit returns true if n holds a decimal digit.
func IsDigit(n byte) bool {
	return n <= 9
}

// Parse returns the type of the nibble n.
func Parse(n byte) (t Type, err error) {
	if n > 0x0f {
		return Unknown, Error.New("invalid nibble: %#x", n)
	}

	t, ok := Types.Match(n)
	if !ok {
		return Unknown, Error.New("unclassified nibble: %#x", n)
	}

	return t, nil
}
