// SPDX-License-Identifier: MIT
package signature_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/HarrisonGreenlee/isohash/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMix64_KnownValue(t *testing.T) {
	t.Parallel()
	// First output of SplitMix64 seeded with 0.
	require.Equal(t, uint64(0xe220a8397b1dcdaf), signature.Mix64(0))
}

func TestMix64_NoCollisionsOnSmallRange(t *testing.T) {
	t.Parallel()
	seen := make(map[uint64]uint64, 1<<16)
	for x := uint64(0); x < 1<<16; x++ {
		y := signature.Mix64(x)
		prev, dup := seen[y]
		require.Falsef(t, dup, "Mix64(%d) == Mix64(%d)", x, prev)
		seen[y] = x
	}
}

func TestWraparound(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(1), signature.WrappingSum([]uint64{math.MaxUint64, 2}))
	require.Equal(t, uint64(0), signature.WrappingSum(nil))
	require.Equal(t,
		signature.WrappingSum([]uint64{3, math.MaxUint64, 7}),
		signature.WrappingSum([]uint64{7, 3, math.MaxUint64}))

	// (2^63)*2 + 5 wraps to 5.
	require.Equal(t, uint64(5), signature.MulAdd(1<<63, 2, 5))
}

func TestFold_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := []uint64{9, 1, 1, math.MaxUint64, 0, 42}
	b := []uint64{42, 0, 1, math.MaxUint64, 9, 1}
	require.Equal(t, signature.Fold(a), signature.Fold(b))
	require.Equal(t, []uint64{9, 1, 1, math.MaxUint64, 0, 42}, a, "input must not be reordered")
}

func TestFold_Distinguishes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x, y []uint64
	}{
		{"empty vs zero", nil, []uint64{0}},
		{"one vs two zeros", []uint64{0}, []uint64{0, 0}},
		{"multiplicity", []uint64{1, 1, 2}, []uint64{1, 2, 2}},
		{"value", []uint64{1, 2, 3}, []uint64{1, 2, 4}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.NotEqual(t, signature.Fold(tc.x), signature.Fold(tc.y))
		})
	}
}

func TestFold_DeterministicUnderOverflow(t *testing.T) {
	t.Parallel()

	// A long run of maximal labels forces every MulAdd to wrap.
	labels := make([]uint64, 1_000_000)
	for i := range labels {
		labels[i] = math.MaxUint64 - uint64(i%3)
	}
	first := signature.Fold(labels)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, signature.Fold(labels))
	}

	r := rand.New(rand.NewPCG(1, 2))
	r.Shuffle(len(labels), func(i, j int) { labels[i], labels[j] = labels[j], labels[i] })
	require.Equal(t, first, signature.Fold(labels))
}

func TestDigest_SortsInPlace(t *testing.T) {
	t.Parallel()

	scratch := []uint64{5, 3, 4}
	d := signature.Digest(scratch)
	require.Equal(t, []uint64{3, 4, 5}, scratch)
	require.Equal(t, uint64(signature.Fold([]uint64{4, 5, 3})), d)
}

func TestCombine(t *testing.T) {
	t.Parallel()

	require.Equal(t, signature.Combine(1, 2, 3), signature.Combine(1, 2, 3))
	require.NotEqual(t, signature.Combine(1, 2, 3), signature.Combine(1, 3, 2), "order matters")
	require.NotEqual(t, signature.Combine(1, 2), signature.Combine(2, 2), "tag separates families")
	require.NotEqual(t, signature.Combine(1), signature.Combine(1, 0), "arity matters")

	var h signature.Hasher
	h.Start(1)
	h.Add(2)
	h.Add(3)
	require.Equal(t, signature.Combine(1, 2, 3), h.Sum())
	require.Equal(t, h.Sum(), h.Sum(), "Sum does not reset")
}

func TestSignature_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "00000000000000ff", signature.Signature(255).String())
	require.Len(t, signature.Signature(math.MaxUint64).String(), 16)
}

func BenchmarkFold(b *testing.B) {
	labels := make([]uint64, 10_000)
	for i := range labels {
		labels[i] = signature.Mix64(uint64(i))
	}
	var sink signature.Signature
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = signature.Fold(labels)
	}
	_ = sink
}
