// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// permutation.go - seeded random relabellings.
//
// Contract:
//   - Permutation(n) returns a uniformly random permutation of 0..n-1.
//   - Isomorphic(adj) returns adj with rows and columns permuted together,
//     plus the permutation used (new vertex i is old vertex perm[i]).
//   - Both require an RNG (WithSeed/WithRand) and never panic.

package builder

import (
	"fmt"

	"github.com/HarrisonGreenlee/isohash/matrix"
)

// Permutation returns a random permutation of 0..n-1 drawn from the
// configured RNG. n = 0 yields an empty permutation.
//
// Errors: ErrTooFewVertices (n < 0), ErrNeedRandSource.
// Complexity: O(n).
func Permutation(n int, bopts ...BuilderOption) ([]int, error) {
	if err := validateMin(MethodPermutation, n, 0); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)
	if err := validateRand(MethodPermutation, cfg); err != nil {
		return nil, err
	}

	return cfg.rng.Perm(n), nil
}

// Isomorphic returns a relabelled copy of adj and the permutation used.
//
// Errors: matrix.ErrNilMatrix, ErrNeedRandSource.
// Complexity: O(n²).
func Isomorphic(adj *matrix.Adjacency, bopts ...BuilderOption) (*matrix.Adjacency, []int, error) {
	if adj == nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodIsomorphic, matrix.ErrNilMatrix)
	}
	perm, err := Permutation(adj.Order(), bopts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodIsomorphic, err)
	}
	out, err := adj.Permute(perm)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodIsomorphic, err)
	}

	return out, perm, nil
}
