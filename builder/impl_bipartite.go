// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds the left partition (n1 nodes) first, then the right (n2 nodes).
//   • Emits every cross pair L_i–R_j; mirrored on directed canvases.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges.
//   • Space: O(n1 + n2) for the node slices.
//
// Determinism:
//   • Edge emission order: i asc over L, inner j asc over R.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
// K_{3,3} and the triangular prism are both 3-regular on six vertices, the
// smallest pair colour refinement cannot tell apart.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g graph.Builder, _ builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := addNodes(g, n1)
		right := addNodes(g, n2)
		for _, u := range left {
			for _, v := range right {
				linkBoth(g, u, v)
			}
		}

		return nil
	}
}
