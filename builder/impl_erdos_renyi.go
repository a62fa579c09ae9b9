// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_erdos_renyi.go - implementation of ErdosRenyi(n, p) constructor.
//
// Model:
//   - Gilbert G(n,p): include each admissible edge independently with prob p.
//   - Undirected canvases sample unordered pairs {i,j}, i<j.
//   - Directed canvases sample ordered pairs (i,j), i≠j. No self-loops.
//   - Sampling is delegated to gonum's gen.Gnp (Batagelj–Brandes skipping),
//     which runs in O(n + m) rather than O(n²) Bernoulli trials.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Fixed seed and call order ⇒ identical edge sets.

package builder

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/graphs/gen"
)

// ErdosRenyi returns a Constructor that samples G(n,p) onto the canvas.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g graph.Builder, cfg builderConfig) error {
		if err := validateMin(MethodErdosRenyi, n, MinErdosRenyiNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodErdosRenyi, p); err != nil {
			return err
		}

		// A nil *rand.Rand must not reach gen.Gnp as a non-nil interface.
		var src rand.Source
		switch {
		case cfg.rng != nil:
			src = cfg.rng
		case p > MinProbability && p < MaxProbability:
			return fmt.Errorf("%s: %w", MethodErdosRenyi, ErrNeedRandSource)
		default:
			// p ∈ {0,1}: Gnp's draws cannot change the outcome.
			src = rand.NewPCG(0, 0)
		}

		if err := gen.Gnp(g, n, p, src); err != nil {
			return fmt.Errorf("%s: %v: %w", MethodErdosRenyi, err, ErrConstructFailed)
		}

		return nil
	}
}
