// SPDX-License-Identifier: MIT

package refine

import (
	"github.com/HarrisonGreenlee/isohash/matrix"
	"github.com/HarrisonGreenlee/isohash/signature"
)

// walkRefiner tracks W_k = A·W_{k-1}, W_0 = I, in uint64 arithmetic.
// W_k[i][c] counts the walks of length k from i to c, modulo 2^64. Reduction
// mod 2^64 commutes with matrix products, so relabelling the vertices only
// permutes the rows and columns of every W_k, wrapped or not.
//
// Round k folds the sorted column c of W_k into the label of c.
type walkRefiner struct {
	adj  *matrix.Adjacency
	n    int
	cur  []uint64 // W_{k-1}, row-major
	next []uint64 // W_k, row-major
}

func newWalkRefiner(adj *matrix.Adjacency) *walkRefiner {
	n := adj.Order()
	r := &walkRefiner{
		adj:  adj,
		n:    n,
		cur:  make([]uint64, n*n),
		next: make([]uint64, n*n),
	}
	for i := 0; i < n; i++ {
		r.cur[i*n+i] = 1
	}
	return r
}

func (r *walkRefiner) len() int { return r.n }

func (r *walkRefiner) initial(dst []uint64) { initialNodeLabels(r.adj, dst) }

func (r *walkRefiner) round(prev, next []uint64) []stage {
	n := r.n
	multiply := stage{n: n, fn: func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := r.next[i*n : (i+1)*n]
			clear(row)
			out, _ := r.adj.Neighbors(i)
			for _, j := range out {
				src := r.cur[j*n : (j+1)*n]
				for c, x := range src {
					row[c] += x
				}
			}
		}
	}}

	label := stage{n: n, fn: func(lo, hi int) {
		scratch := make([]uint64, n)
		for c := lo; c < hi; c++ {
			for i := 0; i < n; i++ {
				scratch[i] = r.next[i*n+c]
			}
			next[c] = signature.Combine(tagWalkRound, prev[c], signature.Digest(scratch))
		}
	}}

	return []stage{multiply, label}
}

func (r *walkRefiner) advance() { r.cur, r.next = r.next, r.cur }
