// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/HarrisonGreenlee/isohash/matrix"
	"github.com/stretchr/testify/require"
)

func TestPermute_Relabels(t *testing.T) {
	t.Parallel()

	// Directed star into vertex 0: 1→0, 2→0.
	am, err := matrix.New([][]int64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
	}, matrix.WithDirected(true))
	require.NoError(t, err)

	// New vertex i is old vertex perm[i]; old hub 0 becomes new vertex 2.
	pm, err := am.Permute([]int{1, 2, 0})
	require.NoError(t, err)
	require.True(t, pm.Directed())
	require.Equal(t, am.Size(), pm.Size())
	require.Equal(t, [][]int64{
		{0, 0, 1},
		{0, 0, 1},
		{0, 0, 0},
	}, pm.Cells())

	in, err := pm.InDegree(2)
	require.NoError(t, err)
	require.Equal(t, 2, in)
}

func TestPermute_IdentityAndInverse(t *testing.T) {
	t.Parallel()

	am, err := matrix.New([][]int64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})
	require.NoError(t, err)

	id, err := am.Permute([]int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, am.Cells(), id.Cells())

	perm := []int{3, 0, 2, 1}
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	pm, err := am.Permute(perm)
	require.NoError(t, err)
	back, err := pm.Permute(inv)
	require.NoError(t, err)
	require.Equal(t, am.Cells(), back.Cells())
}

func TestPermute_Errors(t *testing.T) {
	t.Parallel()

	am, err := matrix.New([][]int64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, err = am.Permute([]int{0})
	require.ErrorIs(t, err, matrix.ErrBadPermutation)

	var nilAm *matrix.Adjacency
	_, err = nilAm.Permute(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
