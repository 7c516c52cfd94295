package bigfloat

import "github.com/calebcase/oops"

// Error is the domain for errors raised by this package.
var Error = oops.Namespace("bigfloat")

// ErrUnsupportedOp is returned by accessors that don't apply to a
// BigFloat's range, e.g. asking a NaN for its exponent.
var ErrUnsupportedOp = Error.New("operation unsupported for this range")
