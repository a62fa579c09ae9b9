// SPDX-License-Identifier: MIT

package refine

import "runtime"

// DefaultGrain is the smallest chunk of elements handed to a worker.
// Stages with fewer elements than this run inline.
const DefaultGrain = 256

// Option customises a refinement run.
type Option func(*Options)

// Options holds the resolved knobs. Use the With* constructors.
type Options struct {
	workers   int
	grain     int
	earlyExit bool
}

// WithWorkers bounds the goroutines used per stage. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("refine: WithWorkers(n<1)")
	}
	return func(o *Options) { o.workers = n }
}

// WithGrain sets the minimum chunk size per worker. Panics if g < 1.
func WithGrain(g int) Option {
	if g < 1 {
		panic("refine: WithGrain(g<1)")
	}
	return func(o *Options) { o.grain = g }
}

// WithEarlyExit makes Lockstep stop after the first round whose sorted label
// multisets differ. It has no effect on single-graph runs.
func WithEarlyExit() Option {
	return func(o *Options) { o.earlyExit = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		grain:   DefaultGrain,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
