// SPDX-License-Identifier: MIT

package refine

import (
	"github.com/HarrisonGreenlee/isohash/matrix"
	"github.com/HarrisonGreenlee/isohash/signature"
)

// Domain tags keep label families apart, so a node label can never equal
// an edge label built from the same words.
const (
	tagNodeInit uint64 = iota + 1
	tagArcNodeInit
	tagNodeRound
	tagArcNodeRound
	tagEdgeInit
	tagArcInit
	tagEdgeRound
	tagArcRound
	tagWalkRound
)

// initialNodeLabels writes f0(degree) for every vertex into dst.
// Directed views hash (outdeg, indeg); undirected views hash deg.
func initialNodeLabels(adj *matrix.Adjacency, dst []uint64) {
	n := adj.Order()
	for v := 0; v < n; v++ {
		out, _ := adj.Degree(v)
		if adj.Directed() {
			in, _ := adj.InDegree(v)
			dst[v] = signature.Combine(tagArcNodeInit, uint64(out), uint64(in))
		} else {
			dst[v] = signature.Combine(tagNodeInit, uint64(out))
		}
	}
}

// nodeRefiner labels vertices by their neighbourhood multisets.
type nodeRefiner struct {
	adj *matrix.Adjacency
}

func (r *nodeRefiner) len() int { return r.adj.Order() }

func (r *nodeRefiner) initial(dst []uint64) { initialNodeLabels(r.adj, dst) }

func (r *nodeRefiner) round(prev, next []uint64) []stage {
	return []stage{{n: r.adj.Order(), fn: func(lo, hi int) {
		var scratch []uint64
		for v := lo; v < hi; v++ {
			out, _ := r.adj.Neighbors(v)
			scratch = gather(scratch[:0], prev, out)
			outDigest := signature.Digest(scratch)
			if !r.adj.Directed() {
				next[v] = signature.Combine(tagNodeRound, prev[v], outDigest)
				continue
			}
			in, _ := r.adj.InNeighbors(v)
			scratch = gather(scratch[:0], prev, in)
			next[v] = signature.Combine(tagArcNodeRound, prev[v], outDigest, signature.Digest(scratch))
		}
	}}}
}

func (r *nodeRefiner) advance() {}

// gather appends labels[i] for each i in idx to dst.
func gather(dst, labels []uint64, idx []int) []uint64 {
	for _, i := range idx {
		dst = append(dst, labels[i])
	}
	return dst
}
