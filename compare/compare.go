// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"slices"

	"github.com/HarrisonGreenlee/isohash/matrix"
	"github.com/HarrisonGreenlee/isohash/refine"
	"github.com/HarrisonGreenlee/isohash/signature"
)

const (
	ctxRun      = "Run"
	ctxMatrices = "Matrices"
)

// Result is the outcome of one comparison.
type Result struct {
	Kind  Kind
	Match bool
	// SignatureA and SignatureB are the folded final labels. Both are zero
	// when ShortCircuit is set.
	SignatureA signature.Signature
	SignatureB signature.Signature
	// Rounds is the number of refinement rounds both graphs completed.
	Rounds int
	// ShortCircuit reports that the graphs differ in order and no
	// refinement was run.
	ShortCircuit bool
}

// Signatures is the comparator: equal signatures mean "likely isomorphic".
func Signatures(sa, sb signature.Signature) bool {
	return sa == sb
}

// NodeHashCompare compares a and b by vertex colour refinement.
func NodeHashCompare(a, b *matrix.Adjacency, rounds int, opts ...Option) (Result, error) {
	return Run(KindNode, a, b, rounds, opts...)
}

// EdgeHashCompare compares a and b by edge colour refinement.
func EdgeHashCompare(a, b *matrix.Adjacency, rounds int, opts ...Option) (Result, error) {
	return Run(KindEdge, a, b, rounds, opts...)
}

// WalkHashCompare compares a and b by walk-count refinement.
func WalkHashCompare(a, b *matrix.Adjacency, rounds int, opts ...Option) (Result, error) {
	return Run(KindWalk, a, b, rounds, opts...)
}

// Run refines a and b in lock-step with the given kind and compares their
// signatures.
//
// Errors: ErrUnknownKind, matrix.ErrNilMatrix, refine.ErrNegativeRounds,
// ErrModeMismatch. All satisfy errors.Is(err, matrix.ErrValidation).
func Run(kind Kind, a, b *matrix.Adjacency, rounds int, opts ...Option) (Result, error) {
	mode, ok := kind.mode()
	if !ok {
		return Result{}, fmt.Errorf("%s: %v: %w", ctxRun, kind, ErrUnknownKind)
	}
	if a == nil || b == nil {
		return Result{}, fmt.Errorf("%s: %w", ctxRun, matrix.ErrNilMatrix)
	}
	if rounds < 0 {
		return Result{}, fmt.Errorf("%s: rounds=%d: %w", ctxRun, rounds, refine.ErrNegativeRounds)
	}
	if a.Directed() != b.Directed() {
		return Result{}, fmt.Errorf("%s: %w", ctxRun, ErrModeMismatch)
	}

	res := Result{Kind: kind}
	if a.Order() != b.Order() {
		res.ShortCircuit = true
		return res, nil
	}

	o := gatherOptions(opts...)
	out, err := refine.Lockstep(mode, a, b, rounds, o.refineOptions()...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", ctxRun, err)
	}

	res.Rounds = out.Rounds
	res.SignatureA = signature.Fold(out.A)
	res.SignatureB = signature.Fold(out.B)
	res.Match = !out.Diverged && Signatures(res.SignatureA, res.SignatureB)
	if res.Match && o.strict {
		res.Match = slices.Equal(slices.Sorted(slices.Values(out.A)), slices.Sorted(slices.Values(out.B)))
	}
	return res, nil
}

// Matrices validates two raw 0/1 matrices and compares them with Run.
// Directedness comes from WithDirected (default undirected).
//
// Errors: any matrix.New error for either input, then as Run.
func Matrices(kind Kind, a, b [][]int64, rounds int, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	mopt := matrix.WithDirected(o.directed)

	am, err := matrix.New(a, mopt)
	if err != nil {
		return Result{}, fmt.Errorf("%s: a: %w", ctxMatrices, err)
	}
	bm, err := matrix.New(b, mopt)
	if err != nil {
		return Result{}, fmt.Errorf("%s: b: %w", ctxMatrices, err)
	}
	return Run(kind, am, bm, rounds, opts...)
}
