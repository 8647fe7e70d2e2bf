// Package bcd encodes non-negative integers as packed Binary-Coded Decimal
// and decodes them back.
//
// Each byte holds two decimal digits, the more significant digit in the high
// nibble. Bytes are big endian: the first byte holds the most significant
// digits. A numeral with an odd number of digits is padded with a zero high
// nibble in the first byte.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 | 0 . 0 . 1 . 0 | 0 and 2: pad and first digit.
//  | 0 . 0 . 1 . 1 | 0 . 0 . 0 . 1 | 3 and 1.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// The example above is 231 (0x02 0x31). A buffer of n bytes holds 2n digits.
//
// Leading Zeros
//
// Numerals are normalized before encoding: leading zeros are removed, so
// "031" encodes to 0x31 exactly like "31". Zero itself always encodes to a
// single 0x00 byte (never an empty buffer). Earlier releases kept the leading
// zero of an odd length numeral; callers comparing encoded bytes of
// zero-prefixed strings should normalize first.
//
// When decoding to a string, DecodeString can drop one leading zero (the pad
// nibble). It never drops more than one and a buffer of zeros decodes to "0".
//
// Fixed Length
//
// The Fixed variants produce exactly length bytes, padding with zero bytes on
// the left. The value must need at most length*8 bits and at most length*2
// digits, otherwise DoesNotFit is returned.
//
// Nibble Validation
//
// Only nibble values 0 through 9 are accepted when decoding. The values 0xa
// through 0xf (including 0xa, which earlier releases let through) fail with
// IllegalNibble naming the offending byte and its zero based index:
//
//  bcd: illegal byte: d0 at 0
//
// Errors
//
// Every error is in the Error class and in one of InvalidInput,
// NegativeValue, DoesNotFit or IllegalNibble. No buffer or value is returned
// alongside an error.
//
// All functions are safe for concurrent use.
package bcd
