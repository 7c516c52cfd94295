package radix

import "github.com/calebcase/oops"

// Error is the domain for errors raised by this package.
var Error = oops.Namespace("radix")

// ErrInvalidRadix is returned when k is outside 1..5, i.e. the radix
// 2**k isn't one of 2, 4, 8, 16, 32.
var ErrInvalidRadix = Error.New("radix bit width out of range [1,5]")

// ErrNotFinite is returned when ToDigits is given an infinite or NaN
// BigFloat; the converter only handles finite values.
var ErrNotFinite = Error.New("value is not finite")

// ErrExponentOverflow is returned when a BigFloat's exponent, or a
// decoded Digits value's reconstructed exponent, exceeds what the
// chosen radix can represent.
var ErrExponentOverflow = Error.New("exponent overflows radix converter")

// ErrDigitOutOfRange is returned when a Digits value contains a digit
// that doesn't fit in the radix it claims.
var ErrDigitOutOfRange = Error.New("digit out of range for radix")
