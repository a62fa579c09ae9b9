// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds n fresh nodes in ascending order.
//   • Emits each unordered pair {i,j} with i<j exactly once,
//     and mirrors to j→i only on directed canvases.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the node slice.

package builder

import "gonum.org/v1/gonum/graph"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g graph.Builder, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		nodes := addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				linkBoth(g, nodes[i], nodes[j])
			}
		}

		return nil
	}
}
