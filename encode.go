package bcd

import (
	"math/big"
	"math/bits"
	"strings"
)

// numeral validates s as an unsigned decimal numeral and returns its digits
// without leading zeros.
func numeral(s string) (digits string, err error) {
	if len(s) == 0 {
		return "", InvalidInput.New("empty numeral")
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", InvalidInput.New("non-digit %q at %d", s[i], i)
		}
	}

	digits = strings.TrimLeft(s, "0")
	if digits == "" {
		digits = "0"
	}

	return digits, nil
}

// pack writes the ASCII digits into the tail of dst, two per byte. Bytes in
// front of the digits are left as they are.
func pack(dst []byte, digits string) {
	i := len(dst) - 1
	j := len(digits)

	for ; j >= 2; j -= 2 {
		dst[i] = (digits[j-2]&0x0f)<<4 | digits[j-1]&0x0f
		i--
	}

	if j == 1 {
		dst[i] = digits[0] & 0x0f
	}
}

// fill packs v into buf from the last byte backward and returns the part of
// v that did not fit.
func fill(buf []byte, v uint64) (rest uint64) {
	for i := len(buf) - 1; i >= 0; i-- {
		b := byte(v % 10)
		v /= 10
		b |= byte(v%10) << 4
		v /= 10

		buf[i] = b
	}

	return v
}

// width returns the number of decimal digits in v (1 for zero).
func width(v uint64) (n int) {
	for n = 1; v >= 10; v /= 10 {
		n++
	}

	return n
}

// EncodeString encodes a decimal numeral to BCD (big endian). Leading zeros
// are dropped first, so "031" and "31" encode identically and "0" encodes as
// a single zero byte.
func EncodeString(s string) (bcd []byte, err error) {
	defer Error.WrapP(&err)

	digits, err := numeral(s)
	if err != nil {
		return nil, err
	}

	bcd = make([]byte, (len(digits)+1)/2)
	pack(bcd, digits)

	return bcd, nil
}

// EncodeStringFixed encodes a decimal numeral to exactly length bytes of BCD,
// zero padded on the left.
func EncodeStringFixed(s string, length int) (bcd []byte, err error) {
	defer Error.WrapP(&err)

	if length < 1 {
		return nil, InvalidInput.New("length=%d", length)
	}

	digits, err := numeral(s)
	if err != nil {
		return nil, err
	}

	if len(digits) > length*2 {
		return nil, DoesNotFit.New("digits=%d length=%d", len(digits), length)
	}

	bcd = make([]byte, length)
	pack(bcd, digits)

	return bcd, nil
}

// EncodeUint64 encodes v to the shortest BCD buffer that holds all of its
// digits.
func EncodeUint64(v uint64) (bcd []byte) {
	bcd = make([]byte, (width(v)+1)/2)

	if rest := fill(bcd, v); rest != 0 {
		panic("bcd: value remaining after packing")
	}

	return bcd
}

// EncodeUint64Fixed encodes v to exactly length bytes of BCD, zero padded on
// the left.
func EncodeUint64Fixed(v uint64, length int) (bcd []byte, err error) {
	defer Error.WrapP(&err)

	if length < 1 {
		return nil, InvalidInput.New("length=%d", length)
	}

	if bits.Len64(v) > length*8 {
		return nil, DoesNotFit.New("value=%d length=%d", v, length)
	}

	bcd = make([]byte, length)

	// The bit length check passes values with more digits than nibbles (for
	// example 200 in one byte), those are caught here.
	if rest := fill(bcd, v); rest != 0 {
		return nil, DoesNotFit.New("value=%d length=%d", v, length)
	}

	return bcd, nil
}

// EncodeInt64 is EncodeUint64 for signed input.
func EncodeInt64(v int64) (bcd []byte, err error) {
	defer Error.WrapP(&err)

	if v < 0 {
		return nil, NegativeValue.New("value=%d", v)
	}

	return EncodeUint64(uint64(v)), nil
}

// EncodeInt64Fixed is EncodeUint64Fixed for signed input.
func EncodeInt64Fixed(v int64, length int) (bcd []byte, err error) {
	defer Error.WrapP(&err)

	if v < 0 {
		return nil, NegativeValue.New("value=%d", v)
	}

	return EncodeUint64Fixed(uint64(v), length)
}

// EncodeBigInt encodes v to BCD. Values that fit in 64 bits take the
// EncodeUint64 path, larger values are encoded from their decimal string.
func EncodeBigInt(v *big.Int) (bcd []byte, err error) {
	defer Error.WrapP(&err)

	switch {
	case v == nil:
		return nil, InvalidInput.New("nil value")
	case v.Sign() < 0:
		return nil, NegativeValue.New("value=%s", v)
	case v.BitLen() > 64:
		return EncodeString(v.Text(10))
	}

	return EncodeUint64(v.Uint64()), nil
}

// EncodeBigIntFixed encodes v to exactly length bytes of BCD, zero padded on
// the left.
func EncodeBigIntFixed(v *big.Int, length int) (bcd []byte, err error) {
	defer Error.WrapP(&err)

	switch {
	case v == nil:
		return nil, InvalidInput.New("nil value")
	case v.Sign() < 0:
		return nil, NegativeValue.New("value=%s", v)
	case length < 1:
		return nil, InvalidInput.New("length=%d", length)
	case v.BitLen() > length*8:
		return nil, DoesNotFit.New("bits=%d length=%d", v.BitLen(), length)
	case v.BitLen() > 64:
		return EncodeStringFixed(v.Text(10), length)
	}

	return EncodeUint64Fixed(v.Uint64(), length)
}
