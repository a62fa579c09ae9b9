// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY domain-facing types. Construction lives in
// adjacency.go, validation in validators.go, options in options.go.
package matrix

// Edge is one element of the edge view of an Adjacency.
// Directed views report every arc (U,V) with a[U][V]==1. Undirected views
// report each unordered pair once with U <= V; a self-loop has U == V.
type Edge struct {
	U int // source (directed) or smaller endpoint (undirected)
	V int // target (directed) or larger endpoint (undirected)
}

// Adjacency is a validated, read-only view of a binary adjacency matrix.
//   - n is the order (number of vertices); 0 is a legal empty graph.
//   - cells is a row-major n*n buffer (offset = i*n + j) holding the matrix
//     as read by the view: for undirected views it is the symmetric closure.
//   - out[v] / in[v] are ascending neighbour lists derived from cells.
//
// An Adjacency never aliases caller memory, so it is safe to share across
// goroutines after construction.
type Adjacency struct {
	n        int     // order
	directed bool    // view semantics
	cells    []bool  // row-major n*n, len == n*n
	out      [][]int // out[v]: ascending u with cells[v*n+u]
	in       [][]int // in[v]: ascending u with cells[u*n+v]; aliases out when undirected
	edges    int     // |E| under the view's semantics
}
