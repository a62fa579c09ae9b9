// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Permute returns the view of P·A·Pᵀ: B[i][j] = A[perm[i]][perm[j]], the same
// row/column relabeling numpy performs with a[perm, :][:, perm]. Directedness
// carries over. The result is isomorphic to am by construction.
//
// Errors: ErrNilMatrix, ErrBadPermutation.
// Complexity: O(n²).
func (am *Adjacency) Permute(perm []int) (*Adjacency, error) {
	if am == nil {
		return nil, fmt.Errorf("Permute: %w", ErrNilMatrix)
	}
	if err := ValidatePermutation(perm, am.n); err != nil {
		return nil, fmt.Errorf("Permute: %w", err)
	}

	n := am.n
	raw := make([]bool, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		src := perm[i] * n
		for j = 0; j < n; j++ {
			raw[i*n+j] = am.cells[src+perm[j]]
		}
	}

	// am.cells is already a closure for undirected views, so fromRaw's
	// mirroring pass is a no-op here.
	return fromRaw(n, raw, am.directed), nil
}
