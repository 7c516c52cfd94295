// Package bigfloat implements an arbitrary-precision binary floating point
// number, modeled after IEEE 754's notion of sign, range and significand but
// with an unbounded exponent and significand.
//
// A BigFloat is one of three ranges:
//
//	Finite    a signed significand and a signed exponent, or signed zero
//	Infinite  a signed infinity
//	NaN       a signed "not a number" carrying an arbitrary-precision
//	          payload; a negative payload marks a signalling NaN
//
// The significand is stored with its trailing zero bits stripped, so every
// finite nonzero value has exactly one representation. The exponent is the
// power of two of the significand's leading (most significant) bit, not the
// power of two of an implied radix point; this keeps normalization a single
// shift instead of a division.
//
// Values are immutable. Every operation that would "change" a BigFloat
// returns a new one.
package bigfloat
