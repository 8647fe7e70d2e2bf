// Package nibble splits bytes into their two 4 bit halves and classifies
// them.
//
// Nibble Classes
//
// Each of the 16 possible nibble values belongs to exactly one class. Digits
// carry a decimal digit; the remaining six values are the sign codes used by
// packed decimal formats.
//
//  | Value   | Class |                                          |
//  |---------|-------|------------------------------------------|
//  | 0x0-0x9 | Digit | Decimal digit 0 through 9                |
//  | 0xa     | Plus  | Positive (alternate)                     |
//  | 0xb     | Minus | Negative (alternate)                     |
//  | 0xc     | Plus  | Positive (preferred)                     |
//  | 0xd     | Minus | Negative (preferred)                     |
//  | 0xe     | Plus  | Positive (alternate)                     |
//  | 0xf     | Plus  | Unsigned                                 |
//  |---------|-------|------------------------------------------|
//
// Byte Layout
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  |     high      |      low      |
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
package nibble
