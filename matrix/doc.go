// Package matrix exposes a binary adjacency matrix as a read-only graph view.
//
// The matrix package provides:
//
//   - Adjacency: a validated n×n {0,1} matrix with O(1) edge lookups and
//     precomputed, ascending neighbour lists (out and in).
//   - Validators returning sentinel errors that all wrap ErrValidation, so
//     callers can branch with errors.Is(err, matrix.ErrValidation).
//   - Permute: the simultaneous row/column permutation used to produce
//     isomorphic copies of a graph.
//   - Converters to and from gonum (mat.Matrix, graph.Graph) and CSV.
//
// Directedness is a property of the view, not of the data: the same cells can
// be read as a directed graph (WithDirected(true)) or as the symmetric closure
// of an undirected one (the default). Symmetry is expected for undirected
// input but only enforced under WithStrictSymmetry.
package matrix
