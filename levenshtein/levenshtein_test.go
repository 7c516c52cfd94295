package levenshtein_test

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/jmkristian/bigfloat/bitstream"
	"github.com/jmkristian/bigfloat/levenshtein"
)

func TestEncodeLiteralVectors(t *testing.T) {
	type TC struct {
		N        int64
		Expected string
	}

	tcs := []TC{
		{0, "0"},
		{1, "8"},
		{2, "c"},
		{5, "e2"},
		{17, "f01"},
	}

	for _, tc := range tcs {
		t.Run(tc.Expected, func(t *testing.T) {
			sink := bitstream.NewSink(false)
			err := levenshtein.Encode(sink, big.NewInt(tc.N))
			require.NoError(t, err)
			require.Equal(t, tc.Expected, sink.Flush())
		})
	}
}

func TestDecodeLiteralVectors(t *testing.T) {
	type TC struct {
		Hex      string
		Expected int64
	}

	tcs := []TC{
		{"0", 0},
		{"8", 1},
		{"c", 2},
		{"e2", 5},
		{"f01", 17},
	}

	for _, tc := range tcs {
		t.Run(tc.Hex, func(t *testing.T) {
			source := bitstream.NewSource(tc.Hex, false)
			n, err := levenshtein.Decode(source)
			require.NoError(t, err)
			require.Equal(t, big.NewInt(tc.Expected), n, spew.Sdump(n))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 15, 16, 17, 31, 32, 63, 64, 127, 128, 1000, 1 << 20}

	for _, n := range values {
		sink := bitstream.NewSink(false)
		err := levenshtein.Encode(sink, big.NewInt(n))
		require.NoError(t, err)
		hex := sink.Flush()

		source := bitstream.NewSource(hex, false)
		got, err := levenshtein.Decode(source)
		require.NoError(t, err, "n=%d hex=%s", n, hex)
		require.Equal(t, big.NewInt(n), got, "n=%d hex=%s", n, hex)
	}
}

func TestRoundTripBigValues(t *testing.T) {
	// Exercise values wide enough that the final read (of n itself) goes
	// through Decode's big.Int GetBigInt path.
	big1 := new(big.Int).Lsh(big.NewInt(1), 200)
	big2 := new(big.Int).Add(big1, big.NewInt(12345))

	for _, n := range []*big.Int{big1, big2} {
		sink := bitstream.NewSink(false)
		err := levenshtein.Encode(sink, n)
		require.NoError(t, err)
		hex := sink.Flush()

		source := bitstream.NewSource(hex, false)
		got, err := levenshtein.Decode(source)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestEncodeOrderingMatchesMagnitude(t *testing.T) {
	// Within non-negative integers, ascending magnitude must yield
	// ascending hex strings, since levenshtein codes are meant to be
	// spliced into order-preserving keys.
	values := []int64{0, 1, 2, 3, 4, 5, 6, 7, 16, 17, 1000, 1 << 20}

	var prev string
	for i, n := range values {
		sink := bitstream.NewSink(false)
		err := levenshtein.Encode(sink, big.NewInt(n))
		require.NoError(t, err)
		hex := sink.Flush()
		if i > 0 {
			require.Less(t, prev, hex, "n=%d should sort after previous value", n)
		}
		prev = hex
	}
}

func TestEncodeNegativeRejected(t *testing.T) {
	sink := bitstream.NewSink(false)
	err := levenshtein.Encode(sink, big.NewInt(-1))
	require.Error(t, err)
}

func TestInvertRoundTrip(t *testing.T) {
	sink := bitstream.NewSink(true)
	err := levenshtein.Encode(sink, big.NewInt(5))
	require.NoError(t, err)
	hex := sink.Flush()

	source := bitstream.NewSource(hex, true)
	got, err := levenshtein.Decode(source)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5), got)
}
