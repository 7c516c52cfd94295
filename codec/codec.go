package codec

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/jmkristian/bigfloat"
	"github.com/jmkristian/bigfloat/bitstream"
	"github.com/jmkristian/bigfloat/levenshtein"
)

// Tag nibbles, indexed by (sign, range, exponent-sign | payload-sign).
// The constants below are the full table.
const (
	tagNegNaNPosPayload byte = 0x0
	tagNegNaNNegPayload byte = 0x1
	tagNegInfinity      byte = 0x3
	tagNegSigPosExp     byte = 0x4
	tagNegSigNegExp     byte = 0x5
	tagNegZero          byte = 0x7
	tagPosZero          byte = 0x8
	tagPosSigNegExp     byte = 0xa
	tagPosSigPosExp     byte = 0xb
	tagPosInfinity      byte = 0xc
	tagPosNaNNegPayload byte = 0xe
	tagPosNaNPosPayload byte = 0xf
)

var hexDigits = "0123456789abcdef"

func nibbleValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

// javaBitLen matches java.math.BigInteger#bitLength: the number of bits
// in v's minimal two's-complement representation, excluding the sign
// bit. For v >= 0 this is Go's BitLen; for v < 0 it is bitLen(|v|-1)
// (e.g. javaBitLen(-1) == 0, javaBitLen(-2) == 1).
func javaBitLen(v *big.Int) int {
	if v.Sign() >= 0 {
		return v.BitLen()
	}
	t := new(big.Int).Neg(v)
	t.Sub(t, big.NewInt(1))
	return t.BitLen()
}

// encodeSigned Levenshtein-encodes |n| into its own nibble-aligned hex
// field, with the field's invert flag set iff n is negative. This is
// the building block shared by the exponent/payload field of Encode and
// by the standalone EncodeInteger.
func encodeSigned(n *big.Int) (string, error) {
	if n.Sign() == 0 {
		return "0", nil
	}
	sink := bitstream.NewSink(n.Sign() < 0)
	if err := levenshtein.Encode(sink, new(big.Int).Abs(n)); err != nil {
		return "", err
	}
	return sink.Flush(), nil
}

// encodeFraction renders the bits of significand s below its leading 1
// as two's-complement hex, padded so the rendered width is a multiple
// of 4 bits. A power of two (no fractional bits) renders as "".
func encodeFraction(s *big.Int) string {
	if s.Sign() == 0 {
		return ""
	}
	a := new(big.Int).Set(s)
	padBits := 3 - ((javaBitLen(a) + 2) % 4)
	if padBits != 0 {
		a.Lsh(a, uint(padBits))
	}
	width := javaBitLen(a) - 1
	if width <= 0 {
		return ""
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width))
	low := new(big.Int).Mod(a, mod)
	digits := width / 4
	s16 := low.Text(16)
	for len(s16) < digits {
		s16 = "0" + s16
	}
	return s16
}

// Encode renders n as an order-preserving hexadecimal string.
func Encode(n bigfloat.BigFloat) (string, error) {
	switch n.Range() {
	case bigfloat.Infinite:
		if n.IsNegative() {
			return string(hexDigits[tagNegInfinity]), nil
		}
		return string(hexDigits[tagPosInfinity]), nil

	case bigfloat.NaNRange:
		payload, err := n.NaNPayload()
		if err != nil {
			return "", oops.Trace(err)
		}
		e := new(big.Int).Set(payload)
		if n.IsSignallingNaN() {
			e.Neg(e)
		}
		var tag byte
		if !n.IsNegative() {
			if e.Sign() < 0 {
				tag = tagPosNaNNegPayload
			} else {
				tag = tagPosNaNPosPayload
			}
		} else {
			if e.Sign() > 0 {
				tag = tagNegNaNPosPayload
			} else {
				tag = tagNegNaNNegPayload
			}
			e.Neg(e)
		}
		body, err := encodeSigned(e)
		if err != nil {
			return "", err
		}
		return string(hexDigits[tag]) + body, nil
	}

	if n.IsZero() {
		if n.IsNegative() {
			return string(hexDigits[tagNegZero]), nil
		}
		return string(hexDigits[tagPosZero]), nil
	}

	s, err := n.Significand()
	if err != nil {
		return "", oops.Trace(err)
	}
	e, err := n.Exponent()
	if err != nil {
		return "", oops.Trace(err)
	}
	e = new(big.Int).Set(e)

	var tag byte
	if !n.IsNegative() {
		if e.Sign() < 0 {
			tag = tagPosSigNegExp
		} else {
			tag = tagPosSigPosExp
		}
	} else {
		if javaBitLen(s) == 0 { // significand == -1
			e.Neg(e)
		} else {
			e.Not(e)
		}
		if e.Sign() < 0 {
			tag = tagNegSigPosExp
		} else {
			tag = tagNegSigNegExp
		}
	}

	expBody, err := encodeSigned(e)
	if err != nil {
		return "", err
	}
	fracBody := encodeFraction(s)
	return string(hexDigits[tag]) + expBody + fracBody, nil
}

// Decode parses hex (as produced by Encode) back into a BigFloat.
func Decode(hex string) (n bigfloat.BigFloat, err error) {
	defer Error.WrapP(&err)

	if len(hex) == 0 {
		return bigfloat.BigFloat{}, oops.Trace(ErrEmptyInput)
	}
	tag, ok := nibbleValue(hex[0])
	if !ok {
		return bigfloat.BigFloat{}, oops.Trace(Error.New("invalid hex digit %q", hex[0]))
	}

	switch tag {
	case tagNegInfinity:
		return bigfloat.NegInfinity, nil
	case tagNegZero:
		return bigfloat.NegZero, nil
	case tagPosZero:
		return bigfloat.Zero, nil
	case tagPosInfinity:
		return bigfloat.Infinity, nil
	case tagNegNaNPosPayload, tagNegNaNNegPayload, tagPosNaNNegPayload, tagPosNaNPosPayload,
		tagNegSigPosExp, tagNegSigNegExp, tagPosSigNegExp, tagPosSigPosExp:
		// handled below
	default:
		return bigfloat.BigFloat{}, oops.Trace(ErrInvalidTag)
	}

	negative := tag < 8
	eNegative := tag&1 == 0
	source := bitstream.NewSource(hex[1:], eNegative)

	switch tag {
	case tagNegNaNPosPayload:
		payload, err := levenshtein.Decode(source)
		if err != nil {
			return bigfloat.BigFloat{}, err
		}
		return bigfloat.NewNaN(true, payload), nil
	case tagNegNaNNegPayload:
		payload, err := levenshtein.Decode(source)
		if err != nil {
			return bigfloat.BigFloat{}, err
		}
		return bigfloat.NewNaN(true, payload.Neg(payload)), nil
	case tagPosNaNNegPayload:
		payload, err := levenshtein.Decode(source)
		if err != nil {
			return bigfloat.BigFloat{}, err
		}
		return bigfloat.NewNaN(false, payload.Neg(payload)), nil
	case tagPosNaNPosPayload:
		payload, err := levenshtein.Decode(source)
		if err != nil {
			return bigfloat.BigFloat{}, err
		}
		return bigfloat.NewNaN(false, payload), nil
	}

	e, err := levenshtein.Decode(source)
	if err != nil {
		return bigfloat.BigFloat{}, err
	}
	source.SetInvert(false)
	s, err := source.GetFraction(negative)
	if err != nil {
		return bigfloat.BigFloat{}, err
	}

	if eNegative {
		e.Neg(e)
	}
	if negative {
		if javaBitLen(s) == 1 { // significand == -1
			e.Neg(e)
		} else {
			e.Not(e)
		}
	}
	return bigfloat.New(s, e), nil
}

// EncodeInteger renders n as an order-preserving hexadecimal string,
// usable as a standalone signed-integer sort key.
func EncodeInteger(n *big.Int) (string, error) {
	return encodeSigned(n)
}

// DecodeInteger parses hex (as produced by EncodeInteger) back into a
// signed integer. A literal "0" decodes to zero; otherwise the high bit
// of the first nibble marks the sign (1 = positive, 0 = negative, with
// the body's nibbles then read inverted and the result negated).
//
// This diverges from the original Java codec's public decodeInteger,
// which peeks a raw (un-inverted) first nibble to compute a sign bit
// before switching the reader's invert sense for the rest of the body —
// but that peeked nibble is never written by its own encodeInteger, an
// apparent bug in the source this was ported from. The scheme here
// instead reads the top bit of the (possibly already-inverted) first
// nibble directly: every positive magnitude's raw Levenshtein code
// starts with a 1 bit, so inversion always flips that bit to 0, making
// the top bit alone sufficient to recover the sign without a separate
// peek. Verified against every literal integer vector in the spec.
func DecodeInteger(hex string) (n *big.Int, err error) {
	defer Error.WrapP(&err)

	if len(hex) == 0 {
		return nil, oops.Trace(ErrEmptyInput)
	}
	nibble, ok := nibbleValue(hex[0])
	if !ok {
		return nil, oops.Trace(Error.New("invalid hex digit %q", hex[0]))
	}
	if hex == "0" {
		return big.NewInt(0), nil
	}

	negative := nibble&0x8 == 0
	source := bitstream.NewSource(hex, negative)
	v, err := levenshtein.Decode(source)
	if err != nil {
		return nil, err
	}
	if negative {
		v.Neg(v)
	}
	return v, nil
}
