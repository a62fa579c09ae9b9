// SPDX-License-Identifier: MIT

package refine

import (
	"fmt"
	"slices"

	"github.com/HarrisonGreenlee/isohash/matrix"
)

// Mode selects the refinement granularity.
type Mode uint8

const (
	// ModeNode labels vertices.
	ModeNode Mode = iota
	// ModeEdge labels edges.
	ModeEdge
	// ModeWalk labels vertices by walk counts.
	ModeWalk
)

// String returns "node", "edge", "walk" or "Mode(n)".
func (m Mode) String() string {
	switch m {
	case ModeNode:
		return "node"
	case ModeEdge:
		return "edge"
	case ModeWalk:
		return "walk"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

const (
	ctxLabels   = "Labels"
	ctxLockstep = "Lockstep"
)

// refiner is one engine bound to one graph.
type refiner interface {
	// len is the number of labelled elements.
	len() int
	// initial writes the round-0 labels.
	initial(dst []uint64)
	// round returns the stages computing next from prev. Stages run in
	// order with a barrier between them.
	round(prev, next []uint64) []stage
	// advance commits engine-private state after all stages of a round.
	advance()
}

func newRefiner(mode Mode, adj *matrix.Adjacency) (refiner, error) {
	switch mode {
	case ModeNode:
		return &nodeRefiner{adj: adj}, nil
	case ModeEdge:
		return newEdgeRefiner(adj), nil
	case ModeWalk:
		return newWalkRefiner(adj), nil
	default:
		return nil, fmt.Errorf("%v: %w", mode, ErrUnknownMode)
	}
}

// PairOutcome holds the final labels of both graphs of a Lockstep run.
type PairOutcome struct {
	A, B []uint64
	// Rounds is the number of rounds completed by both graphs.
	Rounds int
	// Diverged is set when WithEarlyExit stopped the run because the sorted
	// label multisets differed after Rounds rounds.
	Diverged bool
}

// Labels runs mode on adj for rounds rounds and returns the final labels:
// per vertex for ModeNode and ModeWalk, per adj.Edges() entry for ModeEdge.
//
// Errors: ErrNilMatrix, ErrNegativeRounds, ErrUnknownMode.
func Labels(mode Mode, adj *matrix.Adjacency, rounds int, opts ...Option) ([]uint64, error) {
	if err := checkArgs(rounds, adj); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLabels, err)
	}
	r, err := newRefiner(mode, adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLabels, err)
	}
	o := gatherOptions(opts...)

	out, _, _, err := drive(newScheduler(o), []refiner{r}, rounds, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLabels, err)
	}
	return out[0], nil
}

// NodeLabels is Labels(ModeNode, ...).
func NodeLabels(adj *matrix.Adjacency, rounds int, opts ...Option) ([]uint64, error) {
	return Labels(ModeNode, adj, rounds, opts...)
}

// EdgeLabels is Labels(ModeEdge, ...).
func EdgeLabels(adj *matrix.Adjacency, rounds int, opts ...Option) ([]uint64, error) {
	return Labels(ModeEdge, adj, rounds, opts...)
}

// WalkLabels is Labels(ModeWalk, ...).
func WalkLabels(adj *matrix.Adjacency, rounds int, opts ...Option) ([]uint64, error) {
	return Labels(ModeWalk, adj, rounds, opts...)
}

// Lockstep refines a and b together: each stage of round k runs for both
// graphs under one barrier, and round k+1 starts only after both committed.
// The two graphs may differ in order or directedness; callers that need a
// comparison guarantee decide that beforehand.
//
// Errors: ErrNilMatrix, ErrNegativeRounds, ErrUnknownMode.
func Lockstep(mode Mode, a, b *matrix.Adjacency, rounds int, opts ...Option) (PairOutcome, error) {
	if err := checkArgs(rounds, a, b); err != nil {
		return PairOutcome{}, fmt.Errorf("%s: %w", ctxLockstep, err)
	}
	ra, err := newRefiner(mode, a)
	if err != nil {
		return PairOutcome{}, fmt.Errorf("%s: %w", ctxLockstep, err)
	}
	rb, _ := newRefiner(mode, b)
	o := gatherOptions(opts...)

	out, done, diverged, err := drive(newScheduler(o), []refiner{ra, rb}, rounds, o.earlyExit)
	if err != nil {
		return PairOutcome{}, fmt.Errorf("%s: %w", ctxLockstep, err)
	}
	return PairOutcome{A: out[0], B: out[1], Rounds: done, Diverged: diverged}, nil
}

func checkArgs(rounds int, adjs ...*matrix.Adjacency) error {
	for _, adj := range adjs {
		if adj == nil {
			return matrix.ErrNilMatrix
		}
	}
	if rounds < 0 {
		return fmt.Errorf("rounds=%d: %w", rounds, ErrNegativeRounds)
	}
	return nil
}

// drive runs every refiner for up to rounds rounds with synchronous,
// double-buffered updates. All refiners must share a mode, so that their
// stage lists line up. It returns the committed labels per refiner and the
// number of rounds completed.
func drive(s scheduler, rs []refiner, rounds int, earlyExit bool) ([][]uint64, int, bool, error) {
	cur := make([][]uint64, len(rs))
	next := make([][]uint64, len(rs))
	for i, r := range rs {
		cur[i] = make([]uint64, r.len())
		next[i] = make([]uint64, r.len())
		r.initial(cur[i])
	}
	if earlyExit && !sameMultiset(cur) {
		return cur, 0, true, nil
	}

	plans := make([][]stage, len(rs))
	for k := 1; k <= rounds; k++ {
		for i, r := range rs {
			plans[i] = r.round(cur[i], next[i])
		}
		for st := range plans[0] {
			batch := make([]stage, len(rs))
			for i := range rs {
				batch[i] = plans[i][st]
			}
			if err := s.run(batch...); err != nil {
				return nil, k - 1, false, fmt.Errorf("round %d: %w", k, err)
			}
		}
		for i, r := range rs {
			r.advance()
			cur[i], next[i] = next[i], cur[i]
		}
		if earlyExit && !sameMultiset(cur) {
			return cur, k, true, nil
		}
	}
	return cur, rounds, false, nil
}

// sameMultiset reports whether all label arrays hold the same multiset.
func sameMultiset(labels [][]uint64) bool {
	if len(labels) < 2 {
		return true
	}
	ref := slices.Sorted(slices.Values(labels[0]))
	for _, l := range labels[1:] {
		if len(l) != len(ref) {
			return false
		}
		if !slices.Equal(ref, slices.Sorted(slices.Values(l))) {
			return false
		}
	}
	return true
}
