// SPDX-License-Identifier: MIT

package refine

import (
	"github.com/HarrisonGreenlee/isohash/matrix"
	"github.com/HarrisonGreenlee/isohash/signature"
)

// edgeRefiner labels the edges of adj.Edges(), index-aligned.
//
// A round runs in two stages:
//  1. per vertex, digest the sorted labels of incident edges (directed views
//     keep outgoing and incoming apart);
//  2. per edge, combine its own label with its endpoints' digests.
//
// Every edge sharing an endpoint therefore reaches the new label through a
// sorted multiset, without materialising the O(m·Δ) adjacent-edge lists.
type edgeRefiner struct {
	adj   *matrix.Adjacency
	edges []matrix.Edge

	// outInc[v]/inInc[v] are indices into edges. For undirected views inInc
	// is nil and outInc[v] lists every edge touching v once.
	outInc [][]int
	inInc  [][]int

	outDig []uint64
	inDig  []uint64
}

func newEdgeRefiner(adj *matrix.Adjacency) *edgeRefiner {
	n := adj.Order()
	r := &edgeRefiner{
		adj:    adj,
		edges:  adj.Edges(),
		outInc: make([][]int, n),
		outDig: make([]uint64, n),
	}
	if adj.Directed() {
		r.inInc = make([][]int, n)
		r.inDig = make([]uint64, n)
	}
	for id, e := range r.edges {
		r.outInc[e.U] = append(r.outInc[e.U], id)
		switch {
		case adj.Directed():
			r.inInc[e.V] = append(r.inInc[e.V], id)
		case e.U != e.V:
			r.outInc[e.V] = append(r.outInc[e.V], id)
		}
	}
	return r
}

func (r *edgeRefiner) len() int { return len(r.edges) }

func (r *edgeRefiner) initial(dst []uint64) {
	l0 := make([]uint64, r.adj.Order())
	initialNodeLabels(r.adj, l0)
	for id, e := range r.edges {
		a, b := l0[e.U], l0[e.V]
		if r.adj.Directed() {
			var recip uint64
			if r.adj.Has(e.V, e.U) {
				recip = 1
			}
			dst[id] = signature.Combine(tagArcInit, a, b, recip)
			continue
		}
		if a > b {
			a, b = b, a
		}
		dst[id] = signature.Combine(tagEdgeInit, a, b)
	}
}

func (r *edgeRefiner) round(prev, next []uint64) []stage {
	digest := stage{n: r.adj.Order(), fn: func(lo, hi int) {
		var scratch []uint64
		for v := lo; v < hi; v++ {
			scratch = gather(scratch[:0], prev, r.outInc[v])
			r.outDig[v] = signature.Digest(scratch)
			if r.inInc != nil {
				scratch = gather(scratch[:0], prev, r.inInc[v])
				r.inDig[v] = signature.Digest(scratch)
			}
		}
	}}

	update := stage{n: len(r.edges), fn: func(lo, hi int) {
		for id := lo; id < hi; id++ {
			e := r.edges[id]
			if r.inInc != nil {
				next[id] = signature.Combine(tagArcRound, prev[id],
					r.outDig[e.U], r.inDig[e.U], r.outDig[e.V], r.inDig[e.V])
				continue
			}
			a, b := r.outDig[e.U], r.outDig[e.V]
			if a > b {
				a, b = b, a
			}
			next[id] = signature.Combine(tagEdgeRound, prev[id], a, b)
		}
	}}

	return []stage{digest, update}
}

func (r *edgeRefiner) advance() {}
