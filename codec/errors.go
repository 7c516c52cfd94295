package codec

import "github.com/calebcase/oops"

// Error is the domain for errors raised by this package. Decode and
// DecodeInteger wrap every failure (bad hex digit, truncated stream,
// invalid tag, Levenshtein preamble overflow) in this domain, giving
// callers a single ParseError-style surface to check against.
var Error = oops.Namespace("codec")

// ErrInvalidTag is returned when an encoded string's first nibble isn't
// one of the twelve tag values this codec emits.
var ErrInvalidTag = Error.New("invalid tag nibble")

// ErrEmptyInput is returned when Decode or DecodeInteger is given an
// empty string.
var ErrEmptyInput = Error.New("empty input")
