// SPDX-License-Identifier: MIT

// Package refine implements colour refinement over matrix.Adjacency views.
//
// Three engines share one discipline:
//
//	ModeNode  one label per vertex; a round folds the sorted multiset of
//	          neighbour labels (out and in separately when directed).
//	ModeEdge  one label per edge of Adjacency.Edges(); a round folds, per
//	          endpoint, the sorted multiset of incident edge labels.
//	ModeWalk  one label per vertex; round k folds the sorted k-walk counts
//	          ending at that vertex (a column of A^k, wrapping mod 2^64).
//
// Rounds are synchronous: round k reads only round k-1 labels, writes into a
// second buffer, and the buffers swap after a barrier. rounds == 0 yields the
// initial labels (degree-derived), and negative rounds fail with
// ErrNegativeRounds.
//
// Lockstep runs two graphs through the same stages under one barrier per
// stage, so neither graph starts round k+1 before both have committed round
// k. With WithEarlyExit it stops at the first round whose sorted label
// multisets differ.
//
// Concurrency:
//   - Each stage is chunked across an errgroup limited by WithWorkers.
//     Stages smaller than the grain size run on the calling goroutine.
//   - Separate calls share no state and may run concurrently.
//
// Complexity per round (n vertices, m edges, Δ max degree):
//
//	ModeNode  O(n + m log Δ)
//	ModeEdge  O(n + m log Δ)
//	ModeWalk  O(m·n + n² log n)
package refine
