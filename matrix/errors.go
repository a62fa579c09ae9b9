// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its callers. Every validation sentinel wraps ErrValidation, so
// callers that only care about the class use errors.Is(err, ErrValidation),
// and callers that care about the cause match the leaf.
// No function in this package panics on user-supplied data.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Functions
// attach call-site context with fmt.Errorf("Method: ...: %w", ErrX); the
// sentinel identity is preserved for errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (square) -> entries (binary) -> symmetry -> index/permutation.

// ErrValidation is the root of every input-validation failure reported by
// this module (matrix, refine and compare). It is never returned bare.
var ErrValidation = errors.New("validation error")

var (
	// ErrNilMatrix indicates that a nil matrix or nil *Adjacency was supplied.
	ErrNilMatrix = fmt.Errorf("%w: matrix: nil matrix", ErrValidation)

	// ErrNonSquare indicates a ragged or non-square matrix.
	ErrNonSquare = fmt.Errorf("%w: matrix: matrix is not square", ErrValidation)

	// ErrNonBinary indicates an entry outside {0,1}.
	ErrNonBinary = fmt.Errorf("%w: matrix: entry outside {0,1}", ErrValidation)

	// ErrAsymmetry indicates a[i][j] != a[j][i] for an undirected view built
	// under WithStrictSymmetry.
	ErrAsymmetry = fmt.Errorf("%w: matrix: matrix is not symmetric", ErrValidation)

	// ErrOutOfRange indicates a vertex index outside [0, Order()).
	ErrOutOfRange = fmt.Errorf("%w: matrix: vertex index out of range", ErrValidation)

	// ErrBadPermutation indicates a permutation of the wrong length, with an
	// out-of-range entry, or with a repeated entry.
	ErrBadPermutation = fmt.Errorf("%w: matrix: invalid permutation", ErrValidation)
)
