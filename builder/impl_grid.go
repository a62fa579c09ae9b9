// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood (right & bottom neighbour per cell).
//   • Vertices are added in row-major order, so cell (r,c) is row r*cols+c
//     of the resulting Adjacency.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emits Right then Bottom where present. On directed
//     canvases each edge is mirrored.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(rows·cols) vertices + O(rows·cols) edges.
//   • Space: O(rows·cols) for the node slice.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g graph.Builder, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := addNodes(g, rows*cols)
		at := func(r, c int) graph.Node { return cells[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					linkBoth(g, at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					linkBoth(g, at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
