// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for adjacency views.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDirected controls whether the view reads rows as out-edges only.
	// false ⇒ undirected: u–v is present when a[u][v]==1 or a[v][u]==1.
	DefaultDirected = false

	// DefaultStrictSymmetry rejects asymmetric input for undirected views.
	// Off by default: symmetry is expected but not enforced.
	DefaultStrictSymmetry = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	directed       bool // DefaultDirected
	strictSymmetry bool // DefaultStrictSymmetry
}

// WithDirected selects directed (true) or undirected (false) semantics.
// Complexity: O(1).
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

// WithStrictSymmetry makes undirected construction fail with ErrAsymmetry
// when a[i][j] != a[j][i] for some i, j. It has no effect on directed views.
// Complexity: O(1); the check itself is O(n²).
func WithStrictSymmetry() Option {
	return func(o *Options) { o.strictSymmetry = true }
}

// gatherOptions resolves opts over the documented defaults, in order
// (later options override earlier ones).
func gatherOptions(opts ...Option) Options {
	o := Options{
		directed:       DefaultDirected,
		strictSymmetry: DefaultStrictSymmetry,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
