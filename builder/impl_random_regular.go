// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Undirected d-regular simple graph via stub matching with bounded retries.
//   • Stubs are shuffled with the configured RNG and paired consecutively. A
//     pairing is validated (no loops, no duplicate pairs) before the canvas is
//     touched; an invalid pairing is reshuffled.
//
// Contract:
//   • Only UNDIRECTED canvases are supported (else ErrUnsupportedGraphMode).
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts invalid pairings.
//
// Complexity:
//   • Per attempt O(n·d) time and space.
//
// Determinism:
//   • Fixed seed ⇒ identical shuffles ⇒ identical graph.
//
// Regular graphs give every vertex the same initial colour and the same
// neighbour multiset, so node refinement never splits them: two random
// d-regular graphs of the same order always share a node signature.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
)

// RandomRegular returns a Constructor that builds a random undirected
// d-regular graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(g graph.Builder, cfg builderConfig) error {
		if _, directed := g.(graph.Directed); directed {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				MethodRandomRegular, ErrUnsupportedGraphMode)
		}
		if err := validateMin(MethodRandomRegular, n, MinRandomRegularNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if err := validateRand(MethodRandomRegular, cfg); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			nodes := addNodes(g, n)
			for i := 0; i < len(stubs); i += 2 {
				link(g, nodes[stubs[i]], nodes[stubs[i+1]])
			}
			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
