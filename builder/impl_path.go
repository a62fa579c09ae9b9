// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds n fresh nodes in ascending order.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the node slice.

package builder

import "gonum.org/v1/gonum/graph"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g graph.Builder, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		nodes := addNodes(g, n)
		for i := 1; i < n; i++ {
			link(g, nodes[i-1], nodes[i])
		}

		return nil
	}
}
