// SPDX-License-Identifier: MIT

package signature

// SplitMix64 constants (Vigna 2014).
const (
	golden uint64 = 0x9e3779b97f4a7c15
	mulA   uint64 = 0xbf58476d1ce4e5b9
	mulB   uint64 = 0x94d049bb133111eb
)

// foldPrime is the odd multiplier of the polynomial fold. Being odd it is a
// unit mod 2^64, so the fold never collapses the accumulator to zero bits.
const foldPrime uint64 = 0x100000001b3

// hasherSeed is the initial state of a Hasher.
const hasherSeed uint64 = 0xcbf29ce484222325

// Mix64 applies the SplitMix64 finaliser to x.
// It is a bijection on uint64: distinct inputs never collide.
//
// Complexity: O(1).
func Mix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * mulA
	x = (x ^ (x >> 27)) * mulB
	return x ^ (x >> 31)
}

// MulAdd returns acc*m + x modulo 2^64.
func MulAdd(acc, m, x uint64) uint64 {
	return acc*m + x
}

// WrappingSum returns the sum of xs modulo 2^64. The result is independent
// of the order of xs.
func WrappingSum(xs []uint64) uint64 {
	var s uint64
	for _, x := range xs {
		s += x
	}
	return s
}

// Hasher combines an ordered stream of words into one label.
// The zero value is not ready; call Start.
//
//	var h signature.Hasher
//	h.Start(tag)
//	h.Add(own)
//	h.Add(digest)
//	label := h.Sum()
type Hasher struct {
	acc uint64
	n   uint64
}

// Start resets the hasher and absorbs a domain tag, so that labels built for
// different purposes (node, edge, walk) live in different families.
func (h *Hasher) Start(tag uint64) {
	h.acc = Mix64(hasherSeed ^ tag)
	h.n = 0
}

// Add absorbs one word. Order matters.
func (h *Hasher) Add(x uint64) {
	h.acc = Mix64(MulAdd(h.acc, foldPrime, Mix64(x)))
	h.n++
}

// Sum returns the label for the words absorbed so far. It does not reset.
func (h *Hasher) Sum() uint64 {
	return Mix64(h.acc ^ h.n)
}

// Combine is a one-shot Hasher over tag followed by words.
func Combine(tag uint64, words ...uint64) uint64 {
	var h Hasher
	h.Start(tag)
	for _, w := range words {
		h.Add(w)
	}
	return h.Sum()
}
