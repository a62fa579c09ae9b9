// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for input validation.
//   - Keep constructors minimal by delegating shape/entry/permutation checks here.
//   - Return sentinel errors tagged with the validator name; call sites may
//     wrap again with their own method tag.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; they scan in fixed row-major order
//     and report the first violation encountered.
//
// Note:
//   - Each composite validator follows a fixed sequence (nil → shape → entries).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateCells checks that cells is a non-nil square matrix with entries in
// {0,1} and returns its order.
//
// Inputs: caller-owned rows; not retained.
// Errors: ErrNilMatrix (cells == nil), ErrNonSquare (some row length != len(cells)),
// ErrNonBinary (entry ∉ {0,1}). Shape is checked for every row before any entry.
// Complexity: O(n²).
func ValidateCells(cells [][]int64) (int, error) {
	if cells == nil {
		return 0, validatorErrorf("ValidateCells", ErrNilMatrix)
	}
	n := len(cells)
	for i, row := range cells {
		if len(row) != n {
			return 0, validatorErrorf("ValidateCells",
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare))
		}
	}
	for i, row := range cells {
		for j, v := range row {
			if v != 0 && v != 1 {
				return 0, validatorErrorf("ValidateCells",
					fmt.Errorf("a[%d][%d]=%d: %w", i, j, v, ErrNonBinary))
			}
		}
	}

	return n, nil
}

// validateSymmetric scans the strict upper triangle of a row-major n*n
// buffer and fails on the first a[i][j] != a[j][i].
// Complexity: O(n²) time, O(1) space.
func validateSymmetric(n int, raw []bool) error {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if raw[i*n+j] != raw[j*n+i] {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("a[%d][%d] != a[%d][%d]: %w", i, j, j, i, ErrAsymmetry))
			}
		}
	}
	return nil
}

// ValidatePermutation checks that perm is a permutation of 0..n-1.
// Errors: ErrBadPermutation on wrong length, out-of-range or repeated entries.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return validatorErrorf("ValidatePermutation",
			fmt.Errorf("len=%d, want %d: %w", len(perm), n, ErrBadPermutation))
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return validatorErrorf("ValidatePermutation",
				fmt.Errorf("perm[%d]=%d: %w", i, p, ErrBadPermutation))
		}
		seen[p] = true
	}
	return nil
}
