// SPDX-License-Identifier: MIT

// Package matrix - Adjacency construction & neighbour queries.
//
// Purpose:
//   - Validate caller-owned [][]int64 input once, then never look at it again.
//   - Precompute ascending neighbour lists so refinement loops are slice scans.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(n²) time and memory; Neighbors/Degree: O(1); Has: O(1); Edges: O(n + |E|).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxNeighbors   = "Neighbors"
	ctxInNeighbors = "InNeighbors"
	ctxDegree      = "Degree"
	ctxInDegree    = "InDegree"
)

// New validates cells and returns an Adjacency view over a copy of them.
//
// Implementation:
//   - Stage 1: validate shape and entries (ValidateCells).
//   - Stage 2: resolve options; under WithStrictSymmetry check symmetry.
//   - Stage 3: pack into row-major cells and derive neighbour lists.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNonBinary, ErrAsymmetry (all wrap ErrValidation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(cells [][]int64, opts ...Option) (*Adjacency, error) {
	n, err := ValidateCells(cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}
	o := gatherOptions(opts...)

	raw := make([]bool, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		row := cells[i]
		for j = 0; j < n; j++ {
			raw[i*n+j] = row[j] == 1
		}
	}

	if !o.directed && o.strictSymmetry {
		if err = validateSymmetric(n, raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNew, err)
		}
	}

	return fromRaw(n, raw, o.directed), nil
}

// fromRaw takes ownership of raw (row-major n*n) and builds the view.
// Undirected views OR-mirror raw into its symmetric closure first.
// Callers must have validated n and len(raw) == n*n.
func fromRaw(n int, raw []bool, directed bool) *Adjacency {
	var i, j int
	if !directed {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if raw[i*n+j] || raw[j*n+i] {
					raw[i*n+j], raw[j*n+i] = true, true
				}
			}
		}
	}

	am := &Adjacency{n: n, directed: directed, cells: raw}
	am.out = make([][]int, n)
	for i = 0; i < n; i++ {
		var row []int
		for j = 0; j < n; j++ {
			if raw[i*n+j] {
				row = append(row, j)
			}
		}
		am.out[i] = row
	}

	if directed {
		am.in = make([][]int, n)
		for j = 0; j < n; j++ {
			var col []int
			for i = 0; i < n; i++ {
				if raw[i*n+j] {
					col = append(col, i)
				}
			}
			am.in[j] = col
		}
		for i = 0; i < n; i++ {
			am.edges += len(am.out[i])
		}
	} else {
		am.in = am.out
		// Each unordered pair is counted once; a loop sits on the diagonal only.
		for i = 0; i < n; i++ {
			for _, j = range am.out[i] {
				if j >= i {
					am.edges++
				}
			}
		}
	}

	return am
}

// Order returns the number of vertices. A nil receiver has order 0.
// Complexity: O(1).
func (am *Adjacency) Order() int {
	if am == nil {
		return 0
	}
	return am.n
}

// Directed reports whether the view reads rows as out-edges only.
func (am *Adjacency) Directed() bool { return am != nil && am.directed }

// Size returns |E| under the view's semantics (arcs when directed,
// unordered pairs including loops when undirected).
func (am *Adjacency) Size() int {
	if am == nil {
		return 0
	}
	return am.edges
}

// Has reports whether u→v (directed) or u–v (undirected) is present.
// Out-of-range indices report false.
// Complexity: O(1).
func (am *Adjacency) Has(u, v int) bool {
	if am == nil || u < 0 || v < 0 || u >= am.n || v >= am.n {
		return false
	}
	return am.cells[u*am.n+v]
}

// Neighbors returns the ascending vertices u with an edge v→u (directed) or
// v–u (undirected). The returned slice is shared; callers must not modify it.
// Complexity: O(1).
func (am *Adjacency) Neighbors(v int) ([]int, error) {
	if err := am.checkVertex(v); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxNeighbors, v, err)
	}
	return am.out[v], nil
}

// InNeighbors returns the ascending vertices u with an edge u→v. For
// undirected views it equals Neighbors.
// Complexity: O(1).
func (am *Adjacency) InNeighbors(v int) ([]int, error) {
	if err := am.checkVertex(v); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxInNeighbors, v, err)
	}
	return am.in[v], nil
}

// Degree returns len(Neighbors(v)): the out-degree of a directed view, the
// degree of an undirected one (a self-loop counts once).
func (am *Adjacency) Degree(v int) (int, error) {
	if err := am.checkVertex(v); err != nil {
		return 0, fmt.Errorf("%s(%d): %w", ctxDegree, v, err)
	}
	return len(am.out[v]), nil
}

// InDegree returns len(InNeighbors(v)).
func (am *Adjacency) InDegree(v int) (int, error) {
	if err := am.checkVertex(v); err != nil {
		return 0, fmt.Errorf("%s(%d): %w", ctxInDegree, v, err)
	}
	return len(am.in[v]), nil
}

// MaxDegree returns the largest out-degree (or degree) in the view.
func (am *Adjacency) MaxDegree() int {
	if am == nil {
		return 0
	}
	best := 0
	for _, row := range am.out {
		if len(row) > best {
			best = len(row)
		}
	}
	return best
}

// Edges lists the edge view in ascending (U,V) order. Directed views list
// every arc; undirected views list each unordered pair once with U <= V.
// Complexity: O(n + |E|) time, O(|E|) space.
func (am *Adjacency) Edges() []Edge {
	if am == nil {
		return nil
	}
	es := make([]Edge, 0, am.edges)
	for u := 0; u < am.n; u++ {
		for _, v := range am.out[u] {
			if !am.directed && v < u {
				continue // reported from the smaller endpoint
			}
			es = append(es, Edge{U: u, V: v})
		}
	}
	return es
}

// Cells returns a fresh [][]int64 copy of the matrix as read by the view
// (the symmetric closure for undirected views).
// Complexity: O(n²).
func (am *Adjacency) Cells() [][]int64 {
	if am == nil {
		return nil
	}
	out := make([][]int64, am.n)
	for i := 0; i < am.n; i++ {
		row := make([]int64, am.n)
		for j := 0; j < am.n; j++ {
			if am.cells[i*am.n+j] {
				row[j] = 1
			}
		}
		out[i] = row
	}
	return out
}

// checkVertex guards public index-taking methods.
func (am *Adjacency) checkVertex(v int) error {
	if am == nil {
		return ErrNilMatrix
	}
	if v < 0 || v >= am.n {
		return ErrOutOfRange
	}
	return nil
}
