// SPDX-License-Identifier: MIT
package refine_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HarrisonGreenlee/isohash/builder"
	"github.com/HarrisonGreenlee/isohash/matrix"
	"github.com/HarrisonGreenlee/isohash/refine"
)

var allModes = []refine.Mode{refine.ModeNode, refine.ModeEdge, refine.ModeWalk}

func randomGraph(t *testing.T, directed bool, n int, p float64, seed uint64) *matrix.Adjacency {
	t.Helper()
	am, err := builder.Build(directed, []builder.BuilderOption{builder.WithSeed(seed)}, builder.ErdosRenyi(n, p))
	require.NoError(t, err)
	return am
}

func sorted(xs []uint64) []uint64 {
	return slices.Sorted(slices.Values(xs))
}

func TestLabels_PermutationInvariance(t *testing.T) {
	t.Parallel()

	for _, directed := range []bool{false, true} {
		am := randomGraph(t, directed, 40, 0.15, 5)
		pm, perm, err := builder.Isomorphic(am, builder.WithSeed(6))
		require.NoError(t, err)

		for _, mode := range allModes {
			for rounds := 0; rounds <= 4; rounds++ {
				la, err := refine.Labels(mode, am, rounds)
				require.NoError(t, err)
				lb, err := refine.Labels(mode, pm, rounds)
				require.NoError(t, err)

				require.Equalf(t, sorted(la), sorted(lb), "mode=%v directed=%v rounds=%d", mode, directed, rounds)
				if mode == refine.ModeEdge {
					continue
				}
				// Vertex labels follow their vertex through the relabelling.
				for i := range perm {
					require.Equal(t, la[perm[i]], lb[i])
				}
			}
		}
	}
}

func TestLabels_ZeroRoundsIsDegreeTest(t *testing.T) {
	t.Parallel()

	am, err := builder.Build(false, nil, builder.Star(5))
	require.NoError(t, err)

	labels, err := refine.NodeLabels(am, 0)
	require.NoError(t, err)
	require.Len(t, labels, 5)
	for leaf := 2; leaf < 5; leaf++ {
		require.Equal(t, labels[1], labels[leaf], "leaves share degree 1")
	}
	require.NotEqual(t, labels[0], labels[1])
}

func TestLabels_Errors(t *testing.T) {
	t.Parallel()

	am, err := matrix.New([][]int64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, err = refine.NodeLabels(am, -1)
	require.True(t, errors.Is(err, refine.ErrNegativeRounds))
	require.True(t, errors.Is(err, matrix.ErrValidation))

	_, err = refine.EdgeLabels(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = refine.Labels(refine.Mode(9), am, 1)
	require.ErrorIs(t, err, refine.ErrUnknownMode)

	_, err = refine.Lockstep(refine.ModeNode, am, nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLabels_Empty(t *testing.T) {
	t.Parallel()

	empty, err := matrix.New([][]int64{})
	require.NoError(t, err)
	for _, mode := range allModes {
		labels, err := refine.Labels(mode, empty, 3)
		require.NoError(t, err)
		require.Empty(t, labels)
	}
}

func TestLabels_ParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	am := randomGraph(t, true, 120, 0.1, 9)
	for _, mode := range allModes {
		serial, err := refine.Labels(mode, am, 3, refine.WithWorkers(1))
		require.NoError(t, err)
		parallel, err := refine.Labels(mode, am, 3, refine.WithWorkers(8), refine.WithGrain(1))
		require.NoError(t, err)
		require.Equalf(t, serial, parallel, "mode=%v", mode)
	}
}

func TestEdgeLabels_UndirectedCanonical(t *testing.T) {
	t.Parallel()

	upper, err := matrix.New([][]int64{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	})
	require.NoError(t, err)
	lower, err := matrix.New([][]int64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
	})
	require.NoError(t, err)

	for rounds := 0; rounds < 3; rounds++ {
		a, err := refine.EdgeLabels(upper, rounds)
		require.NoError(t, err)
		b, err := refine.EdgeLabels(lower, rounds)
		require.NoError(t, err)
		require.Equal(t, a, b)
		require.Len(t, a, 3)
	}
}

func TestNodeLabels_DirectionMatters(t *testing.T) {
	t.Parallel()

	chain, err := matrix.New([][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}, matrix.WithDirected(true))
	require.NoError(t, err)
	fork, err := matrix.New([][]int64{
		{0, 0, 0},
		{1, 0, 1},
		{0, 0, 0},
	}, matrix.WithDirected(true))
	require.NoError(t, err)

	a, err := refine.NodeLabels(chain, 2)
	require.NoError(t, err)
	b, err := refine.NodeLabels(fork, 2)
	require.NoError(t, err)
	require.NotEqual(t, sorted(a), sorted(b))
}

func TestWalkLabels_InvariantUnderWraparound(t *testing.T) {
	t.Parallel()

	// Walk counts in a dense 40-vertex digraph exceed 2^64 well before 16 rounds.
	am := randomGraph(t, true, 40, 0.9, 21)
	pm, perm, err := builder.Isomorphic(am, builder.WithSeed(22))
	require.NoError(t, err)

	la, err := refine.WalkLabels(am, 16)
	require.NoError(t, err)
	lb, err := refine.WalkLabels(pm, 16)
	require.NoError(t, err)
	for i := range perm {
		require.Equal(t, la[perm[i]], lb[i])
	}

	again, err := refine.WalkLabels(am, 16)
	require.NoError(t, err)
	require.Equal(t, la, again)
}

func TestLockstep_EarlyExit(t *testing.T) {
	t.Parallel()

	// Same degree sequence (2,2,2,1,1,0); told apart by neighbour degrees.
	p5, err := builder.Build(false, nil, builder.Path(5), builder.Complete(1))
	require.NoError(t, err)
	triEdge, err := builder.Build(false, nil, builder.Cycle(3), builder.Path(2), builder.Complete(1))
	require.NoError(t, err)

	out, err := refine.Lockstep(refine.ModeNode, p5, triEdge, 10, refine.WithEarlyExit())
	require.NoError(t, err)
	require.True(t, out.Diverged)
	require.Equal(t, 1, out.Rounds)

	full, err := refine.Lockstep(refine.ModeNode, p5, triEdge, 10)
	require.NoError(t, err)
	require.False(t, full.Diverged)
	require.Equal(t, 10, full.Rounds)
	require.NotEqual(t, sorted(full.A), sorted(full.B))
}

func TestLockstep_MatchesLabels(t *testing.T) {
	t.Parallel()

	a := randomGraph(t, false, 50, 0.2, 31)
	b := randomGraph(t, false, 50, 0.2, 32)
	for _, mode := range allModes {
		out, err := refine.Lockstep(mode, a, b, 4, refine.WithGrain(1), refine.WithWorkers(4))
		require.NoError(t, err)
		la, err := refine.Labels(mode, a, 4)
		require.NoError(t, err)
		lb, err := refine.Labels(mode, b, 4)
		require.NoError(t, err)
		require.Equal(t, la, out.A)
		require.Equal(t, lb, out.B)
		require.Equal(t, 4, out.Rounds)
	}
}

func TestLockstep_UnequalOrder(t *testing.T) {
	t.Parallel()

	p3, err := builder.Build(false, nil, builder.Path(3))
	require.NoError(t, err)
	p4, err := builder.Build(false, nil, builder.Path(4))
	require.NoError(t, err)

	out, err := refine.Lockstep(refine.ModeNode, p3, p4, 2)
	require.NoError(t, err)
	require.Len(t, out.A, 3)
	require.Len(t, out.B, 4)
	require.Equal(t, 2, out.Rounds)

	out, err = refine.Lockstep(refine.ModeNode, p3, p4, 2, refine.WithEarlyExit())
	require.NoError(t, err)
	require.True(t, out.Diverged)
	require.Zero(t, out.Rounds)
}

// C6 and two disjoint triangles are 2-regular on six vertices; colour
// refinement cannot separate them at any depth.
func TestLockstep_RegularGraphsCollide(t *testing.T) {
	t.Parallel()

	c6, err := builder.Build(false, nil, builder.Cycle(6))
	require.NoError(t, err)
	twoC3, err := builder.Build(false, nil, builder.DisjointCycles(2, 3))
	require.NoError(t, err)

	for _, mode := range []refine.Mode{refine.ModeNode, refine.ModeEdge} {
		out, err := refine.Lockstep(mode, c6, twoC3, 8, refine.WithEarlyExit())
		require.NoError(t, err)
		require.False(t, out.Diverged)
		require.Equal(t, sorted(out.A), sorted(out.B))
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { refine.WithWorkers(0) })
	require.Panics(t, func() { refine.WithGrain(0) })
}

func TestMode_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "node", refine.ModeNode.String())
	require.Equal(t, "edge", refine.ModeEdge.String())
	require.Equal(t, "walk", refine.ModeWalk.String())
	require.Equal(t, "Mode(7)", refine.Mode(7).String())
}

func BenchmarkNodeLabels(b *testing.B) {
	am, err := builder.Build(false, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErdosRenyi(500, 0.1))
	if err != nil {
		b.Fatal(err)
	}
	var sink []uint64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = refine.NodeLabels(am, 10)
	}
	_ = sink
}

func BenchmarkEdgeLabels(b *testing.B) {
	am, err := builder.Build(false, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErdosRenyi(500, 0.1))
	if err != nil {
		b.Fatal(err)
	}
	var sink []uint64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = refine.EdgeLabels(am, 10)
	}
	_ = sink
}
