// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error with method context
// when its precondition is violated.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN is rejected.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand enforces the presence of an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
