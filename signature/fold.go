// SPDX-License-Identifier: MIT

package signature

import (
	"fmt"
	"slices"
)

// Signature is the order-independent fingerprint of a label multiset.
type Signature uint64

// String renders the signature as 16 lowercase hex digits.
func (s Signature) String() string {
	return fmt.Sprintf("%016x", uint64(s))
}

// Fold sorts a copy of labels and reduces it to a Signature.
// labels is not modified.
//
// Procedure:
//
//	acc = seed
//	for x in sorted(labels): acc = acc*P + Mix64(x)   (mod 2^64)
//	sig = Mix64(acc ^ Mix64(len))
//
// The length is folded in so that multisets that differ only by zero-valued
// labels still differ.
//
// Complexity: O(k log k) time, O(k) space for k labels.
func Fold(labels []uint64) Signature {
	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	return FoldSorted(sorted)
}

// FoldSorted is Fold for input that is already in ascending order.
// Passing unsorted input gives an order-dependent result.
//
// Complexity: O(k).
func FoldSorted(sorted []uint64) Signature {
	acc := hasherSeed
	for _, x := range sorted {
		acc = MulAdd(acc, foldPrime, Mix64(x))
	}
	return Signature(Mix64(acc ^ Mix64(uint64(len(sorted)))))
}

// Digest is FoldSorted returning a plain uint64, for use as a word inside a
// Hasher. scratch is sorted in place.
func Digest(scratch []uint64) uint64 {
	slices.Sort(scratch)
	return uint64(FoldSorted(scratch))
}
