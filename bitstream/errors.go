package bitstream

import "github.com/calebcase/oops"

// Error is the domain for errors raised by this package.
var Error = oops.Namespace("bitstream")

// ErrOverflow is returned when a single call would buffer more bits than
// this implementation allows (an Insert call wider than 64 bits, or a
// GetBigInt call wider than the big-integer bit limit).
var ErrOverflow = Error.New("bit buffer overflow")

// ErrTruncated is returned when a Source runs out of hex input before
// satisfying a Get* call.
var ErrTruncated = Error.New("truncated bit stream")

// maxBigIntBits bounds GetBigInt, mirroring the source representation's
// own limit of (2**31 - 1) bytes.
const maxBigIntBits = (int64(1)<<31-1)*8 - 1
