// Package codec converts between bigfloat.BigFloat and a hexadecimal
// string whose lexicographic order matches the numeric order of the
// values it represents. It also exposes EncodeInteger/DecodeInteger,
// the same order-preserving Levenshtein-based scheme applied directly
// to signed arbitrary-precision integers, for use as a standalone sort
// key.
//
// The string is a tag nibble (selecting sign, range, and exponent or
// payload sign) followed, for ranges that carry a payload, by a
// Levenshtein-coded exponent or NaN payload and, for finite non-zero
// values, the significand's fractional bits in two's complement. The
// invert flag on the underlying bitstream is set per tag so that
// lexicographic order within a tag's group matches numeric order (for
// negative values, a larger magnitude sorts first).
package codec
