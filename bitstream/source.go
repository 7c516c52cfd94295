package bitstream

import (
	"math/big"

	"github.com/calebcase/oops"
)

// Source consumes bit fields from a hexadecimal character sequence.
type Source struct {
	hex    string
	pos    int
	buf    *big.Int
	bufLen uint
	invert bool
}

// NewSource returns a Source reading hex. When invert is set, every
// nibble pulled from hex is complemented (bitwise NOT mod 16) before its
// bits are made available to Get*.
func NewSource(hex string, invert bool) *Source {
	return &Source{
		hex:    hex,
		buf:    new(big.Int),
		invert: invert,
	}
}

// SetInvert changes the nibble-complement sense applied to hex digits not
// yet pulled into the buffer. Bits already buffered keep whichever sense
// was in effect when they were read. This lets one Source read a run of
// fields that don't all share the same sign convention (as the codec's
// exponent and fraction fields don't).
func (s *Source) SetInvert(invert bool) {
	s.invert = invert
}

// DiscardPartialNibble drops any buffered bits that don't make up a
// complete nibble, so the next read starts hex-digit-aligned. Levenshtein
// codes are followed by nibble-padding at encode time; this is the read
// side's mirror, needed before switching to a field with a different
// invert sense.
func (s *Source) DiscardPartialNibble() {
	s.bufLen -= s.bufLen % 4
	s.buf.And(s.buf, mask(s.bufLen))
}

// fill pulls hex nibbles into the buffer until it holds at least need
// bits or the input is exhausted.
func (s *Source) fill(need uint) error {
	for s.bufLen < need {
		if s.pos >= len(s.hex) {
			return oops.Trace(ErrTruncated)
		}
		c := s.hex[s.pos]
		v, ok := hexNibble(c)
		if !ok {
			return oops.Trace(Error.New("invalid hex digit %q", c))
		}
		if s.invert {
			v ^= 0xf
		}
		s.pos++
		s.buf.Lsh(s.buf, 4)
		s.buf.Or(s.buf, big.NewInt(int64(v)))
		s.bufLen += 4
	}
	return nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

// getBitsBig consumes numBits bits from the head of the buffer and
// returns them as a big.Int, for widths that may exceed 64 bits.
func (s *Source) getBitsBig(numBits int) (*big.Int, error) {
	if numBits < 0 {
		return nil, oops.Trace(ErrOverflow)
	}
	if numBits == 0 {
		return new(big.Int), nil
	}
	n := uint(numBits)
	if err := s.fill(n); err != nil {
		return nil, err
	}
	shift := s.bufLen - n
	result := new(big.Int).Rsh(s.buf, shift)
	s.buf.And(s.buf, mask(shift))
	s.bufLen = shift
	return result, nil
}

// GetBits consumes numBits bits (at most 64) from the head of the buffer.
func (s *Source) GetBits(numBits int) (uint64, error) {
	if numBits > 64 {
		return 0, oops.Trace(ErrOverflow)
	}
	v, err := s.getBitsBig(numBits)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// GetNatural consumes a run of 1 bits terminated by a 0 bit and returns
// the run's length.
func (s *Source) GetNatural() (uint64, error) {
	var count uint64
	for {
		bit, err := s.GetBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			return count, nil
		}
		count++
	}
}

// GetInteger returns (1 << numBits) | next, where next is the following
// numBits bits, for numBits in [0, 63] (the result must fit in a uint64).
// At numBits 62 and 63 the read is split into two GetBits calls instead
// of one: the source implementation this mirrors buffered bits in a
// fixed 64-bit register and needed that headroom this close to full.
// This Source has no such limit; the split is kept to mirror the
// original's structure, and both paths return the same value.
func (s *Source) GetInteger(numBits int) (uint64, error) {
	if numBits < 0 || numBits > 63 {
		return 0, oops.Trace(ErrOverflow)
	}
	if numBits < 62 {
		rest, err := s.GetBits(numBits)
		if err != nil {
			return 0, err
		}
		return uint64(1)<<uint(numBits) | rest, nil
	}
	hi, err := s.GetBits(numBits - 31)
	if err != nil {
		return 0, err
	}
	lo, err := s.GetBits(31)
	if err != nil {
		return 0, err
	}
	return uint64(1)<<uint(numBits) | hi<<31 | lo, nil
}

// GetBigInt returns (1 << numBits) | next over an arbitrary-precision
// result, guarded by maxBigIntBits.
func (s *Source) GetBigInt(numBits int) (*big.Int, error) {
	if numBits < 0 || int64(numBits) > maxBigIntBits {
		return nil, oops.Trace(ErrOverflow)
	}
	rest, err := s.getBitsBig(numBits)
	if err != nil {
		return nil, err
	}
	result := new(big.Int).Lsh(big.NewInt(1), uint(numBits))
	result.Or(result, rest)
	return result, nil
}

// GetFraction consumes the rest of the hex input as the fractional
// remainder, synthesizing a leading nibble (0001 if !negative, 1110 if
// negative) so the result is the two's-complement integer whose bits are
// the leading 1 (implicit in the synthesized nibble) followed by the
// fraction, with the given sign.
func (s *Source) GetFraction(negative bool) (*big.Int, error) {
	if err := s.fill(s.bufLen + uint((len(s.hex)-s.pos)*4)); err != nil {
		return nil, err
	}
	leading := int64(0b0001)
	if negative {
		leading = 0b1110
	}
	newLen := s.bufLen + 4
	combined := new(big.Int).Lsh(big.NewInt(leading), s.bufLen)
	combined.Or(combined, s.buf)
	if negative {
		full := new(big.Int).Lsh(big.NewInt(1), newLen)
		combined.Sub(combined, full)
	}
	s.buf = new(big.Int)
	s.bufLen = 0
	return combined, nil
}

// Remaining reports how many bits are still available: buffered bits
// plus four times the unread hex characters.
func (s *Source) Remaining() int {
	return int(s.bufLen) + (len(s.hex)-s.pos)*4
}
