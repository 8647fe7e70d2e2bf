package bcd

import (
	"math"
	"math/big"

	"github.com/calebcase/bcd/nibble"
)

// digits returns both nibbles of the byte at position i of a BCD buffer.
func digits(b byte, i int) (high, low byte, err error) {
	high, low = nibble.Split(b)

	if !nibble.IsDigit(high) || !nibble.IsDigit(low) {
		return 0, 0, IllegalNibble.New("%x%x at %d", high, low, i)
	}

	return high, low, nil
}

// Valid returns an error for an empty buffer or the first byte holding a
// nibble above 9.
func Valid(bcd []byte) (err error) {
	defer Error.WrapP(&err)

	if len(bcd) == 0 {
		return InvalidInput.New("empty buffer")
	}

	for i, b := range bcd {
		_, _, err = digits(b, i)
		if err != nil {
			return err
		}
	}

	return nil
}

// Decode returns the integer held in a BCD buffer (big endian).
func Decode(bcd []byte) (v *big.Int, err error) {
	defer Error.WrapP(&err)

	// Up to 9 bytes (18 digits) always fit in a uint64.
	if len(bcd) <= 9 {
		u, err := DecodeUint64(bcd)
		if err != nil {
			return nil, err
		}

		return new(big.Int).SetUint64(u), nil
	}

	s, err := DecodeString(bcd, false)
	if err != nil {
		return nil, err
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, InvalidInput.New("unparsable digits %q", s)
	}

	return v, nil
}

// DecodeUint64 returns the integer held in a BCD buffer (big endian). Values
// above math.MaxUint64 fail with DoesNotFit.
func DecodeUint64(bcd []byte) (v uint64, err error) {
	defer Error.WrapP(&err)

	if len(bcd) == 0 {
		return 0, InvalidInput.New("empty buffer")
	}

	for i, b := range bcd {
		high, low, err := digits(b, i)
		if err != nil {
			return 0, err
		}

		for _, d := range [2]byte{high, low} {
			if v > (math.MaxUint64-uint64(d))/10 {
				return 0, DoesNotFit.New("exceeds 64 bits at %d", i)
			}

			v = v*10 + uint64(d)
		}
	}

	return v, nil
}

// DecodeString returns the 2*len(bcd) decimal digits held in a BCD buffer.
//
// With stripLeadingZero a single leading '0' is removed (the pad of an odd
// length numeral). A buffer of all zeros decodes to "0".
func DecodeString(bcd []byte, stripLeadingZero bool) (s string, err error) {
	defer Error.WrapP(&err)

	if len(bcd) == 0 {
		return "", InvalidInput.New("empty buffer")
	}

	buf := make([]byte, 0, len(bcd)*2)
	zero := true

	for i, b := range bcd {
		high, low, err := digits(b, i)
		if err != nil {
			return "", err
		}

		buf = append(buf, '0'|high, '0'|low)

		if b != 0 {
			zero = false
		}
	}

	if stripLeadingZero && buf[0] == '0' {
		if zero {
			return "0", nil
		}

		buf = buf[1:]
	}

	return string(buf), nil
}
