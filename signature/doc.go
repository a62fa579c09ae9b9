// Package signature reduces label multisets into fixed-width fingerprints.
//
// Overview:
//   - Mix64 is the SplitMix64 finaliser: a bijective avalanche over uint64.
//   - Hasher and Combine build a label from a fixed, ordered list of words
//     (a node's own label followed by digests of its neighbourhood).
//   - Fold sorts a label multiset and folds it polynomially into a Signature,
//     so the result does not depend on the order the labels were produced in.
//
// Numeric policy:
//
//	All arithmetic is on uint64 and wraps modulo 2^64. Go defines unsigned
//	overflow, so the same input sequence yields the same bits on every
//	platform and every graph size. Wraparound is never reported as an error.
//	MulAdd and WrappingSum name the two operations the engines rely on.
//
// Determinism:
//   - No package state, no randomness, no map iteration.
//   - Safe for concurrent use; every function is pure.
package signature
