// SPDX-License-Identifier: MIT
package refine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScheduler_CoversEveryIndexOnce runs two stages under one barrier and
// checks that every index of each was visited exactly once.
func TestScheduler_CoversEveryIndexOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		workers, grain int
		sizes          []int
	}{
		{"inline", 1, DefaultGrain, []int{10, 3}},
		{"small grain", 4, 1, []int{37, 5}},
		{"uneven", 3, 7, []int{100, 0}},
		{"below grain", 8, 1000, []int{999}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := scheduler{workers: tc.workers, grain: tc.grain}
			hits := make([][]int32, len(tc.sizes))
			stages := make([]stage, len(tc.sizes))
			for i, n := range tc.sizes {
				h := make([]int32, n)
				hits[i] = h
				stages[i] = stage{n: n, fn: func(lo, hi int) {
					for k := lo; k < hi; k++ {
						atomic.AddInt32(&h[k], 1)
					}
				}}
			}
			require.NoError(t, s.run(stages...))
			for _, h := range hits {
				for k, c := range h {
					require.Equalf(t, int32(1), c, "index %d", k)
				}
			}
		})
	}
}
