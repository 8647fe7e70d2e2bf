package bcd

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("bcd")

// Error kinds. Test for one with Has, e.g. bcd.IllegalNibble.Has(err).
var (
	// InvalidInput is a malformed numeral, buffer or length.
	InvalidInput = errs.Class("invalid input")

	// NegativeValue is a numeric argument below zero.
	NegativeValue = errs.Class("negative not supported")

	// DoesNotFit is a value too large for the requested length.
	DoesNotFit = errs.Class("value does not fit")

	// IllegalNibble is a byte holding a nibble above 9.
	IllegalNibble = errs.Class("illegal byte")
)
