package decimal

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/bcd"
	"github.com/calebcase/bcd/nibble"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

const (
	// Precision is the largest number of digits, integer and fraction, packed.
	Precision = 38

	// sign is written into the last nibble of every packed value.
	sign byte = 0x0c
)

// Block is a non-negative fixed point base 10 number.
type Block struct {
	decimal.Decimal
}

// MakeBlock returns a block holding d.
func MakeBlock(d decimal.Decimal) Block {
	return Block{Decimal: d}
}

// MakeBlockFromString parses a decimal number such as "12.34" into a block.
func MakeBlockFromString(s string) (b Block, err error) {
	defer Error.WrapP(&err)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return b, bcd.InvalidInput.Wrap(err)
	}

	return MakeBlock(d), nil
}

// Pack returns the coefficient digits of d followed by a sign nibble, and the
// scale (number of digits after the decimal point).
func Pack(d decimal.Decimal) (data []byte, scale int32, err error) {
	defer Error.WrapP(&err)

	if d.Sign() < 0 {
		return nil, 0, bcd.NegativeValue.New("value=%s", d)
	}

	digits := d.Coefficient().Text(10)

	width := len(digits)
	if e := d.Exponent(); e > 0 {
		width += int(e)
	}

	if width > Precision {
		return nil, 0, bcd.DoesNotFit.New("digits=%d precision=%d", width, Precision)
	}

	// A trailing zero digit reserves the last nibble for the sign.
	data, err = bcd.EncodeString(digits + "0")
	if err != nil {
		return nil, 0, err
	}

	data[len(data)-1] |= sign

	return data, -d.Exponent(), nil
}

// Unpack parses packed digits and a sign nibble. Only positive and unsigned
// sign nibbles are accepted.
func Unpack(data []byte, scale int32) (d decimal.Decimal, err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return d, bcd.InvalidInput.New("empty buffer")
	}

	last := len(data) - 1
	high, low := nibble.Split(data[last])

	t, err := nibble.Parse(low)
	if err != nil {
		return d, err
	}

	switch t {
	case nibble.Plus:
	case nibble.Minus:
		return d, bcd.NegativeValue.New("sign %x at %d", low, last)
	default:
		return d, bcd.IllegalNibble.New("%x%x at %d: missing sign", high, low, last)
	}

	digits := make([]byte, len(data))
	copy(digits, data)
	digits[last] = nibble.Join(high, 0)

	s, err := bcd.DecodeString(digits, false)
	if err != nil {
		return d, err
	}

	v, ok := new(big.Int).SetString(s[:len(s)-1], 10)
	if !ok {
		return d, bcd.InvalidInput.New("unparsable digits %q", s)
	}

	return decimal.NewFromBigInt(v, -scale), nil
}
