package integer

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/bcd"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is an unsigned integer number.
type Block struct {
	// Value is the integer. A nil Value is zero.
	Value *big.Int
}

func (b Block) value() *big.Int {
	if b.Value == nil {
		return new(big.Int)
	}

	return b.Value
}

// MarshalBinary implements encoding.BinaryMarshaler. The data is the shortest
// BCD buffer holding the value.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	return bcd.EncodeBigInt(b.value())
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := bcd.Decode(data)
	if err != nil {
		return err
	}

	b.Value = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Block) MarshalText() (text []byte, err error) {
	defer Error.WrapP(&err)

	v := b.value()
	if v.Sign() < 0 {
		return nil, bcd.NegativeValue.New("value=%s", v)
	}

	return []byte(v.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// decimal numeral; leading zeros are allowed.
func (b *Block) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	data, err := bcd.EncodeString(string(text))
	if err != nil {
		return err
	}

	return b.UnmarshalBinary(data)
}

// String returns the decimal representation of the value.
func (b Block) String() string {
	return b.value().String()
}

// Schema for an integer.
type Schema struct {
	// Length is the exact number of bytes of encoded data. Zero selects the
	// shortest encoding.
	Length int
}

// Encode returns the BCD encoding of the block.
func (s Schema) Encode(b *Block) (data []byte, err error) {
	defer Error.WrapP(&err)

	if s.Length == 0 {
		return b.MarshalBinary()
	}

	return bcd.EncodeBigIntFixed(b.value(), s.Length)
}

// Decode parses a block from data.
func (s Schema) Decode(data []byte, b *Block) (err error) {
	defer Error.WrapP(&err)

	if s.Length != 0 && len(data) != s.Length {
		return bcd.InvalidInput.New("length=%d expected=%d", len(data), s.Length)
	}

	return b.UnmarshalBinary(data)
}
