// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_cycle.go - Cycle(n) and DisjointCycles(k, n) constructors.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds n fresh nodes in ascending order.
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(n) for the node slice.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// On directed canvases the ring is oriented i → i+1.
func Cycle(n int) Constructor {
	return func(g graph.Builder, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		addRing(g, n)

		return nil
	}
}

// addRing adds n fresh nodes closed into a ring and returns them in order.
// Edges are emitted in ascending i; i==n-1 connects back to 0.
func addRing(g graph.Builder, n int) []graph.Node {
	nodes := addNodes(g, n)
	for i := 0; i < n; i++ {
		link(g, nodes[i], nodes[(i+1)%n])
	}
	return nodes
}

// DisjointCycles returns a Constructor that adds k disjoint copies of C_n.
// Every vertex has degree 2, so for k ≥ 2 the result is degree-regular and
// locally indistinguishable from the single cycle C_{k·n}.
func DisjointCycles(k, n int) Constructor {
	return func(g graph.Builder, cfg builderConfig) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", MethodDisjointCycles, k, ErrTooFewVertices)
		}
		for i := 0; i < k; i++ {
			if err := Cycle(n)(g, cfg); err != nil {
				return fmt.Errorf("%s: copy %d: %w", MethodDisjointCycles, i, err)
			}
		}

		return nil
	}
}
