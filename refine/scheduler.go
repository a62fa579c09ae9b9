// SPDX-License-Identifier: MIT

package refine

import "golang.org/x/sync/errgroup"

// stage is one data-parallel step of a round: fn is applied to disjoint
// half-open ranges covering [0, n). fn may read any previous-round state
// but writes only to indices in its own range.
type stage struct {
	n  int
	fn func(lo, hi int)
}

// scheduler executes stages with a bounded pool. Every call to run is a
// barrier: it returns only after all ranges of all given stages completed.
type scheduler struct {
	workers int
	grain   int
}

func newScheduler(o Options) scheduler {
	return scheduler{workers: o.workers, grain: o.grain}
}

// run executes the given stages concurrently and waits for all of them.
func (s scheduler) run(stages ...stage) error {
	total := 0
	for _, st := range stages {
		total += st.n
	}
	if s.workers <= 1 || total < s.grain {
		for _, st := range stages {
			if st.n > 0 {
				st.fn(0, st.n)
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, st := range stages {
		st := st
		chunk := st.n / s.workers
		if chunk < s.grain {
			chunk = s.grain
		}
		for lo := 0; lo < st.n; lo += chunk {
			lo, hi := lo, min(lo+chunk, st.n)
			g.Go(func() error {
				st.fn(lo, hi)
				return nil
			})
		}
	}
	return g.Wait()
}
