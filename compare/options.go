// SPDX-License-Identifier: MIT

package compare

import "github.com/HarrisonGreenlee/isohash/refine"

// Option customises a comparison.
type Option func(*Options)

// Options holds the resolved knobs. Use the With* constructors.
type Options struct {
	workers   int // 0 means the refine default
	strict    bool
	earlyExit bool
	directed  bool // Matrices only
}

// WithWorkers bounds the goroutines used per refinement stage.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("compare: WithWorkers(n<1)")
	}
	return func(o *Options) { o.workers = n }
}

// WithStrictMultiset additionally requires the sorted final label vectors to
// be equal, so a signature collision alone cannot produce a match.
func WithStrictMultiset() Option {
	return func(o *Options) { o.strict = true }
}

// WithEarlyExit stops refinement at the first round whose sorted label
// multisets differ; Result.Rounds then reports the rounds actually run.
func WithEarlyExit() Option {
	return func(o *Options) { o.earlyExit = true }
}

// WithDirected sets how Matrices reads its raw input. Ignored by the
// Adjacency-based entry points, which carry their own directedness.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) refineOptions() []refine.Option {
	var ro []refine.Option
	if o.workers > 0 {
		ro = append(ro, refine.WithWorkers(o.workers))
	}
	if o.earlyExit {
		ro = append(ro, refine.WithEarlyExit())
	}
	return ro
}
