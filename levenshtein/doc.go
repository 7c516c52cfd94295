// Package levenshtein codes non-negative arbitrary-precision integers onto
// a bitstream.Sink/Source using Levenshtein's recursive universal code.
//
// Encoding n > 0 walks the chain n, bitlen(n)-1, bitlen(bitlen(n)-1)-1, ...
// down to 1. The chain length c is written first as a unary count (c ones
// then a terminating 0 bit), then each chain value (from the one nearest 1
// down to n itself) contributes its low bitlen-1 bits, omitting the
// implicit leading 1. n == 0 is the single bit 0 (c == 0, no body).
//
// Sign is not this package's concern: a negative value is coded by giving
// the caller's bitstream.Sink or bitstream.Source an inverted nibble sense
// before calling Encode/Decode.
package levenshtein
