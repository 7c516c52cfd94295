package levenshtein

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/jmkristian/bigfloat/bitstream"
)

// Encode writes the Levenshtein coding of n (n >= 0) to sink.
func Encode(sink *bitstream.Sink, n *big.Int) error {
	if n.Sign() < 0 {
		return oops.Trace(Error.New("levenshtein: negative value %s", n))
	}

	if n.Sign() == 0 {
		return sink.Insert(1, 0)
	}
	if n.IsInt64() && n.Int64() == 1 {
		return sink.Insert(2, 0b10)
	}

	chain := chainFor(n)
	c := len(chain) + 1

	unary := uint64(0)
	for i := 0; i < c; i++ {
		unary = unary<<1 | 1
	}
	unary <<= 1 // terminating 0
	if err := sink.Insert(c+1, unary); err != nil {
		return err
	}

	for i := len(chain) - 1; i >= 0; i-- {
		v := chain[i]
		width := v.BitLen() - 1
		sink.AppendBigInt(width, v)
	}
	return nil
}

// chainFor returns [n, bitlen(n)-1, bitlen(bitlen(n)-1)-1, ...], stopping
// once it reaches a value of 1 (exclusive). Only called for n >= 2.
func chainFor(n *big.Int) []*big.Int {
	var chain []*big.Int
	cur := new(big.Int).Set(n)
	one := big.NewInt(1)
	for cur.Cmp(one) != 0 {
		chain = append(chain, new(big.Int).Set(cur))
		cur = big.NewInt(int64(cur.BitLen() - 1))
	}
	return chain
}

// Decode reads a Levenshtein-coded non-negative integer from source. A
// Levenshtein code's length is bit-granular, not nibble-granular; once the
// code is fully read, any leftover bits short of the next hex digit are
// discarded, so a caller reading further fields from the same source
// (e.g. the codec's fraction field, which starts its own nibble-aligned
// run) starts hex-digit-aligned.
func Decode(source *bitstream.Source) (*big.Int, error) {
	defer source.DiscardPartialNibble()

	c, err := source.GetNatural()
	if err != nil {
		return nil, err
	}
	switch c {
	case 0:
		return big.NewInt(0), nil
	case 1:
		return big.NewInt(1), nil
	}

	// All but the last chain step size intermediate bit counts, which the
	// chain's own shrinking (bitlen(v)-1 each step) keeps small; only the
	// final step's value (n itself) can be arbitrarily wide, so only it
	// uses the big.Int-capable read.
	numBits := uint64(1)
	for i := uint64(2); i < c; i++ {
		v, err := source.GetInteger(int(numBits))
		if err != nil {
			return nil, err
		}
		numBits = v
	}

	if numBits > uint64(^uint(0)>>1) {
		return nil, oops.Trace(ErrOverflow)
	}
	return source.GetBigInt(int(numBits))
}
