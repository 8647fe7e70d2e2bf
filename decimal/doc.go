// Package decimal provides a packed decimal: a fixed point base 10 number
// whose digits are stored as BCD.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is fixed point number, value is an unsigned integer, and scale
// is the number of digits after the decimal point. For example:
//
//  12.34 = 1234 * 10^-2
//
// Value may have up to 38 digits. Negative numbers are not supported.
//
// Encoding
//
// The digits of value are packed two per byte (see package bcd), followed by a
// sign nibble. When the digit count is even a zero nibble is prepended so the
// sign lands in the low nibble of the last byte. Pack always writes 0xc; Unpack
// also accepts the other positive codes 0xa, 0xe and 0xf and rejects the
// negative codes 0xb and 0xd.
//
// In MessagePack the decimal is extension type 1 and the payload starts with
// the scale as a MessagePack integer.
//
// Examples
//
// 0 (ext payload 00 0c)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 | Scale 0 (positive fixint).
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 | 1 . 1 . 0 . 0 | Digit 0, sign 0xc.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 12.34 (ext payload 02 01 23 4c)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 . 0 | Scale 2 (positive fixint).
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 | 0 . 0 . 0 . 1 | Pad and digit 1.
//  | 0 . 0 . 1 . 0 | 0 . 0 . 1 . 1 | Digits 2 and 3.
//  | 0 . 1 . 0 . 0 | 1 . 1 . 0 . 0 | Digit 4, sign 0xc.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
package decimal
