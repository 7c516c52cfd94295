package radix

import (
	"math"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/jmkristian/bigfloat"
)

// Digits is a multi-digit fractional value at some radix 2**k, in the
// form an external arbitrary-precision library would hand back from
// formatting a value in fraction-only notation: the represented number
// is
//
//	sign * 0.Digits[0]Digits[1]...Digits[n-1] (base 2**k) * (2**k)**Scale
//
// Digits holds one digit per element, most-significant first, each in
// [0, 2**k). An empty Digits slice represents zero.
type Digits struct {
	Negative bool
	Digits   []byte
	Scale    int64
}

var maxLong = big.NewInt(math.MaxInt64)

// maxExponent[k] bounds |exponent| for radix 2**k; maxExponent[0] is
// unused (k == 0, a plain binary digit stream, isn't exposed by this
// package's API, only by BigFloat itself).
var maxExponent = [6]*big.Int{
	big.NewInt(64),
	maxLong,
	new(big.Int).Lsh(maxLong, 1),
	new(big.Int).Lsh(maxLong, 2),
	new(big.Int).Lsh(maxLong, 3),
	new(big.Int).Lsh(maxLong, 4),
}

func checkRadix(k int) error {
	if k < 1 || k > 5 {
		return oops.Trace(ErrInvalidRadix)
	}
	return nil
}

// divModFloor returns x divided by y and its remainder, rounded so the
// remainder is always in [0, y) for y > 0 (Go's big.Int.DivMod already
// implements Euclidean division, which is exactly floor division for a
// positive divisor).
func divModFloor(x *big.Int, y int64) (q, m *big.Int) {
	q = new(big.Int)
	m = new(big.Int)
	q.DivMod(x, big.NewInt(y), m)
	return q, m
}

// ToDigits converts a finite BigFloat to a multi-digit value at radix
// 2**k. It fails with ErrNotFinite for infinite or NaN input and
// ErrExponentOverflow if the exponent doesn't fit the chosen radix.
func ToDigits(from bigfloat.BigFloat, k int) (d Digits, err error) {
	defer Error.WrapP(&err)

	if err := checkRadix(k); err != nil {
		return Digits{}, err
	}
	switch from.Range() {
	case bigfloat.Infinite, bigfloat.NaNRange:
		return Digits{}, oops.Trace(ErrNotFinite)
	}
	if from.IsZero() {
		return Digits{Negative: from.IsNegative()}, nil
	}

	e, err := from.Exponent()
	if err != nil {
		return Digits{}, oops.Trace(err)
	}
	if new(big.Int).Abs(e).Cmp(maxExponent[k]) > 0 {
		return Digits{}, oops.Trace(ErrExponentOverflow)
	}

	s, err := from.Significand()
	if err != nil {
		return Digits{}, oops.Trace(err)
	}
	s = new(big.Int).Abs(s)

	// Shift s left so its lowest bit's power of two (bitScale - shift) is
	// a multiple of k: each peeled digit below then consumes exactly k
	// bits, with none left over.
	bitScale := new(big.Int).Sub(e, big.NewInt(int64(s.BitLen()-1)))
	_, shiftRem := divModFloor(bitScale, int64(k))
	if shift := shiftRem.Int64(); shift != 0 {
		s.Lsh(s, uint(shift))
	}

	digitMask := big.NewInt((int64(1) << uint(k)) - 1)
	var digits []byte
	for s.Sign() != 0 {
		digit := new(big.Int).And(s, digitMask)
		digits = append(digits, byte(digit.Int64()))
		s.Rsh(s, uint(k))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	scaleQuot, _ := divModFloor(e, int64(k))
	scale := scaleQuot.Int64() + 1

	return Digits{Negative: from.IsNegative(), Digits: digits, Scale: scale}, nil
}

// FromDigits converts a multi-digit value at radix 2**k back to a
// BigFloat. It fails with ErrDigitOutOfRange if a digit doesn't fit the
// radix, and ErrExponentOverflow if the reconstructed exponent, or the
// digit count itself, overflows what the chosen radix can represent.
func FromDigits(d Digits, k int) (out bigfloat.BigFloat, err error) {
	defer Error.WrapP(&err)

	if err := checkRadix(k); err != nil {
		return bigfloat.BigFloat{}, err
	}
	if len(d.Digits) == 0 {
		if d.Negative {
			return bigfloat.NegZero, nil
		}
		return bigfloat.Zero, nil
	}

	// Mirrors the original converter's guard against the digit count,
	// times bits per digit, overflowing a 32-bit bit length.
	if int64(len(d.Digits))*int64(k) > math.MaxInt32 {
		return bigfloat.BigFloat{}, oops.Trace(ErrExponentOverflow)
	}

	radix := int64(1) << uint(k)
	significand := new(big.Int)
	for _, digit := range d.Digits {
		if int64(digit) < 0 || int64(digit) >= radix {
			return bigfloat.BigFloat{}, oops.Trace(ErrDigitOutOfRange)
		}
		significand.Lsh(significand, uint(k))
		significand.Or(significand, big.NewInt(int64(digit)))
	}
	if significand.Sign() == 0 {
		if d.Negative {
			return bigfloat.NegZero, nil
		}
		return bigfloat.Zero, nil
	}

	// The last digit's lowest bit has power of two (Scale - len(Digits))*k.
	scaleBits := (d.Scale - int64(len(d.Digits))) * int64(k)
	exponent := big.NewInt(scaleBits + int64(significand.BitLen()) - 1)
	if new(big.Int).Abs(exponent).Cmp(maxExponent[k]) > 0 {
		return bigfloat.BigFloat{}, oops.Trace(ErrExponentOverflow)
	}

	if d.Negative {
		significand.Neg(significand)
	}
	return bigfloat.New(significand, exponent), nil
}
