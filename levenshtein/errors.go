package levenshtein

import "github.com/calebcase/oops"

// Error is the domain for errors raised by this package.
var Error = oops.Namespace("levenshtein")

// ErrOverflow is returned when a decoded chain value grows too large to
// serve as a further bit-count argument.
var ErrOverflow = Error.New("levenshtein chain value too large")
