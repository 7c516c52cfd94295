package bigfloat_test

import (
	"math"
	"math/big"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	. "github.com/jmkristian/bigfloat"
)

func TestFloat64RoundTrip(t *testing.T) {
	type TC struct {
		Name string
		In   float64
	}

	tcs := []TC{
		{"zero", 0},
		{"negative zero", math.Copysign(0, -1)},
		{"one", 1},
		{"negative one", -1},
		{"two", 2},
		{"half", 0.5},
		{"max", math.MaxFloat64},
		{"smallest normal", 2.2250738585072014e-308},
		{"smallest subnormal", math.SmallestNonzeroFloat64},
		{"three times smallest subnormal", 3 * math.SmallestNonzeroFloat64},
		{"large power of two", math.Pow(2, 256)},
		{"negative large power of two", -math.Pow(2, 256)},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			actual := FromFloat64(tc.In)
			require.Equal(t, tc.In, actual.ToFloat64(), spew.Sdump(actual))
		})
	}
}

func TestFloat64NaN(t *testing.T) {
	type TC struct {
		Name     string
		Bits     uint64
		Negative bool
		Payload  *big.Int
	}

	tcs := []TC{
		{"quiet zero payload", 0x7ff8000000000000, false, big.NewInt(0)},
		{"negative quiet zero payload", 0xfff8000000000000, true, big.NewInt(0)},
		{"quiet payload one", 0x7ff8000000000001, false, big.NewInt(1)},
		{"quiet payload 0x123", 0x7ff8000000000123, false, big.NewInt(0x123)},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			from := NewNaN(tc.Negative, tc.Payload)

			actualBits := math.Float64bits(from.ToFloat64())
			require.Equal(t, tc.Bits, actualBits)

			roundTrip := FromFloat64(math.Float64frombits(tc.Bits))
			require.True(t, roundTrip.Equal(from), spew.Sdump(roundTrip, from))
		})
	}
}

func TestLiteralValues(t *testing.T) {
	type TC struct {
		Name     string
		Expected BigFloat
		Number   float64
	}

	tcs := []TC{
		{"256", FromBigInt(big.NewInt(256)), 256},
		{"2", FromInt64(2).Neg().Neg(), 2}, // sanity check on Neg round trip
		{"1.5", New(big.NewInt(3), big.NewInt(0)), 1.5},
		{"0.5", New(big.NewInt(1), big.NewInt(-1)), 0.5},
		{"-0.25", New(big.NewInt(-1), big.NewInt(-2)), -0.25},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			require.True(t, tc.Expected.EqualNumber(FromFloat64(tc.Number)), spew.Sdump(tc.Expected))
		})
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, n := range []int64{-3, -2, -1, 0, 1, 2, 3, 5, math.MaxInt64, math.MinInt64} {
		actual := FromInt64(n)
		require.Equal(t, n, actual.ToInt64())
		require.Equal(t, float64(n), actual.ToFloat64())
	}
}

func TestEquals(t *testing.T) {
	require.False(t, NegZero.Equal(Zero))
	require.True(t, NegZero.EqualNumber(Zero))

	f := FromInt64(10)
	f2 := New(new(big.Int).Sub(new(big.Int).Neg(mustSignificand(t, f)), big.NewInt(1)), mustExponent(t, f))
	require.False(t, f.Equal(f2))
}

func TestNaNEquality(t *testing.T) {
	require.False(t, NaN.EqualNumber(NaN))
	require.True(t, NaN.Equal(NaN))
	require.False(t, NaN.Equal(NegNaN))
}

func TestOrdering(t *testing.T) {
	doubles := []float64{}
	for i := 3; i <= 9; i++ {
		doubles = append(doubles, float64(i), float64(-i))
	}
	for _, boundary := range []float64{0, math.Pow(2, 8), math.Pow(2, 255), math.Pow(2, 256)} {
		for _, increment := range []float64{math.SmallestNonzeroFloat64, 3 * math.SmallestNonzeroFloat64} {
			doubles = append(doubles, boundary, boundary+increment, boundary-increment, -boundary, -boundary+increment, -boundary-increment)
		}
	}

	sort.Slice(doubles, func(i, j int) bool {
		a, b := doubles[i], doubles[j]
		if a == b {
			return math.Signbit(a) && !math.Signbit(b) // -0 sorts before +0
		}
		return a < b
	})

	expected := make([]BigFloat, len(doubles))
	for i, d := range doubles {
		expected[i] = FromFloat64(d)
	}

	actual := append([]BigFloat{}, expected...)
	sort.Slice(actual, func(i, j int) bool {
		return actual[i].Compare(actual[j]) < 0
	})

	for i := range expected {
		require.True(t, expected[i].Equal(actual[i]), "index %d: %s vs %s", i, spew.Sdump(expected[i]), spew.Sdump(actual[i]))
	}
}

func TestTotalOrderIncludesSpecials(t *testing.T) {
	ordered := []BigFloat{
		NegNaN, NegInfinity, FromInt64(-5), NegZero, Zero, FromInt64(5), Infinity, NaN,
	}
	for i := 0; i < len(ordered)-1; i++ {
		require.Equal(t, -1, ordered[i].Compare(ordered[i+1]), "index %d", i)
	}
}

func TestUnsupportedAccessors(t *testing.T) {
	_, err := Infinity.Significand()
	require.ErrorIs(t, err, ErrUnsupportedOp)

	_, err = NaN.Exponent()
	require.ErrorIs(t, err, ErrUnsupportedOp)

	_, err = Zero.NaNPayload()
	require.ErrorIs(t, err, ErrUnsupportedOp)
}

func mustSignificand(t *testing.T, f BigFloat) *big.Int {
	s, err := f.Significand()
	require.NoError(t, err)
	return s
}

func mustExponent(t *testing.T, f BigFloat) *big.Int {
	e, err := f.Exponent()
	require.NoError(t, err)
	return e
}
