// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first node added; leaves follow in ascending order.
//   - Emits spokes in stable order hub → leaf[i]. For directed canvases,
//     also emits leaf[i] → hub to preserve spoke symmetry.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges (undirected) or O(2n-2) (directed).
//   - Space: O(n) for the node slice.

package builder

import "gonum.org/v1/gonum/graph"

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g graph.Builder, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		nodes := addNodes(g, n)
		hub := nodes[0]
		for _, leaf := range nodes[1:] {
			linkBoth(g, hub, leaf)
		}

		return nil
	}
}
