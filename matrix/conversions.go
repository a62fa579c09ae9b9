// SPDX-License-Identifier: MIT

// Package matrix: converters between Adjacency and gonum types.
//
// These adapters let callers hand in matrices produced by gonum/mat pipelines
// and graphs produced by gonum/graph generators, and hand Adjacency back out
// for linear-algebra work. Vertex order is deterministic: gonum nodes are
// indexed by ascending node ID.
package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromDense = "FromDense"
	ctxFromGraph = "FromGraph"
)

// FromDense validates a gonum matrix and returns an Adjacency view of it.
// Entries must be exactly 0 or 1 (NaN and ±Inf are rejected as non-binary).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonBinary, ErrAsymmetry.
// Complexity: O(n²).
func FromDense(m mat.Matrix, opts ...Option) (*Adjacency, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromDense, ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxFromDense, r, c, ErrNonSquare)
	}

	n := r
	raw := make([]bool, n*n)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = m.At(i, j)
			switch {
			case v == 1:
				raw[i*n+j] = true
			case v == 0:
			default:
				if math.IsNaN(v) {
					return nil, fmt.Errorf("%s: a[%d][%d]=NaN: %w", ctxFromDense, i, j, ErrNonBinary)
				}
				return nil, fmt.Errorf("%s: a[%d][%d]=%g: %w", ctxFromDense, i, j, v, ErrNonBinary)
			}
		}
	}

	o := gatherOptions(opts...)
	if !o.directed && o.strictSymmetry {
		if err := validateSymmetric(n, raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxFromDense, err)
		}
	}

	return fromRaw(n, raw, o.directed), nil
}

// ToDense returns the view as a gonum dense matrix of 0/1 values.
// An empty view yields an empty (zero-value) *mat.Dense.
// Complexity: O(n²).
func (am *Adjacency) ToDense() *mat.Dense {
	if am == nil || am.n == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, am.n*am.n)
	for k, on := range am.cells {
		if on {
			data[k] = 1
		}
	}
	return mat.NewDense(am.n, am.n, data)
}

// FromGraph converts a gonum graph into an Adjacency. The view is directed
// iff g implements graph.Directed. Node i of the view is the i-th node of g
// by ascending ID.
//
// Errors: ErrNilMatrix when g is nil.
// Complexity: O(n log n + n²).
func FromGraph(g graph.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGraph, ErrNilMatrix)
	}
	_, directed := g.(graph.Directed)

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID() < nodes[b].ID() })

	n := len(nodes)
	index := make(map[int64]int, n)
	for i, nd := range nodes {
		index[nd.ID()] = i
	}

	raw := make([]bool, n*n)
	for i, nd := range nodes {
		to := g.From(nd.ID())
		for to.Next() {
			j := index[to.Node().ID()]
			raw[i*n+j] = true
		}
	}

	return fromRaw(n, raw, directed), nil
}
