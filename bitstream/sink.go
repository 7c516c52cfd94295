package bitstream

import (
	"math/big"
	"strings"

	"github.com/calebcase/oops"
)

// Sink builds a hexadecimal string from a stream of bit fields.
type Sink struct {
	buf    *big.Int
	bitLen uint
	invert bool
}

// NewSink returns an empty Sink. When invert is set, every nibble Flush
// emits is complemented (bitwise NOT mod 16) before being rendered as hex.
func NewSink(invert bool) *Sink {
	return &Sink{
		buf:    new(big.Int),
		invert: invert,
	}
}

func mask(numBits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), numBits)
	return m.Sub(m, big.NewInt(1))
}

// Append pushes the low numBits bits of value onto the tail of the buffer.
func (s *Sink) Append(numBits int, value uint64) {
	s.AppendBigInt(numBits, new(big.Int).SetUint64(value))
}

// AppendBigInt pushes the low numBits bits of value onto the tail of the
// buffer. value may be wider than 64 bits.
func (s *Sink) AppendBigInt(numBits int, value *big.Int) {
	if numBits <= 0 {
		return
	}
	n := uint(numBits)
	v := new(big.Int).And(value, mask(n))
	s.buf.Lsh(s.buf, n)
	s.buf.Or(s.buf, v)
	s.bitLen += n
}

// AppendBytes pushes the low numBits bits of a big-endian byte string onto
// the tail of the buffer. The first (most significant) chunk may carry
// fewer than 8 of those bits; data is expected to be exactly
// ceil(numBits/8) bytes long.
func (s *Sink) AppendBytes(numBits int, data []byte) {
	s.AppendBigInt(numBits, new(big.Int).SetBytes(data))
}

// Insert prepends the low numBits bits of value at the head of the
// buffer, ahead of everything appended or inserted so far. A single
// Insert call is limited to 64 bits; wider values fail with ErrOverflow.
func (s *Sink) Insert(numBits int, value uint64) error {
	if numBits < 0 || numBits > 64 {
		return oops.Trace(ErrOverflow)
	}
	if numBits == 0 {
		return nil
	}
	n := uint(numBits)
	v := new(big.Int).And(new(big.Int).SetUint64(value), mask(n))
	v.Lsh(v, s.bitLen)
	s.buf.Or(s.buf, v)
	s.bitLen += n
	return nil
}

// Flush pads the buffer on the right (the tail) with zero bits up to the
// next nibble boundary, renders every buffered nibble as a hex digit
// (complemented first if invert is set), and returns the result. Flush
// may be called only once; the Sink is spent afterward.
func (s *Sink) Flush() string {
	pad := (4 - s.bitLen%4) % 4
	if pad != 0 {
		s.buf.Lsh(s.buf, pad)
		s.bitLen += pad
	}
	nibbles := s.bitLen / 4
	var sb strings.Builder
	sb.Grow(int(nibbles))
	for i := uint(0); i < nibbles; i++ {
		shift := (nibbles - 1 - i) * 4
		nibble := new(big.Int).Rsh(s.buf, shift)
		nibble.And(nibble, big.NewInt(0xf))
		v := nibble.Uint64()
		if s.invert {
			v ^= 0xf
		}
		sb.WriteByte("0123456789abcdef"[v])
	}
	return sb.String()
}
