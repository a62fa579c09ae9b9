// SPDX-License-Identifier: MIT

// Package compare decides whether two graphs are likely isomorphic by
// comparing refinement signatures.
//
// A match means the graphs are indistinguishable by the chosen refinement at
// the chosen depth; it is a necessary, not sufficient, condition for
// isomorphism. A mismatch is definitive: isomorphic graphs always produce
// equal signatures, for every round count, including after uint64
// wraparound.
//
// Entry points:
//
//	NodeHashCompare(a, b, rounds)   vertex colour refinement
//	EdgeHashCompare(a, b, rounds)   edge colour refinement
//	WalkHashCompare(a, b, rounds)   walk-count refinement
//	Run(kind, a, b, rounds)         dispatch by Kind
//	Matrices(kind, a, b, rounds)    same, from raw [][]int64
//
// Order of checks:
//  1. nil inputs, negative rounds: validation error.
//  2. differing directedness: ErrModeMismatch.
//  3. differing order: Result{Match: false, ShortCircuit: true}; no
//     refinement runs and both signatures are zero.
//
// Both graphs always run the same number of rounds in lock-step. Mismatch
// is reported through Result, never as an error.
package compare
