// Package bitstream is a bit-level sink and source over a hexadecimal
// character sequence. Each carries a boolean invert flag that, when set,
// complements every nibble it emits or consumes (bitwise NOT mod 16). The
// flag exists so a caller can flip the sense of a run of nibbles and keep
// lexicographic order over the hex alphabet aligned with numeric order,
// even for negative quantities.
//
// Bits accumulate most-significant-first: Append pushes at the tail,
// Insert pushes at the head, and on the source side Get* consumes from
// the head. Neither side is bounded to a machine word; both are backed by
// math/big so callers can stream exponents and significands of any size.
package bitstream
