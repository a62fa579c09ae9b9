// Package isohash is a probabilistic graph isomorphism tester built on
// refinement hashing.
//
// Two graphs given as 0/1 adjacency matrices are refined in lock-step and
// their final vertex or edge labels folded into one 64-bit signature each.
// Equal signatures mean "likely isomorphic"; different signatures prove the
// graphs are not.
//
// Everything is organized under a handful of subpackages:
//
//	matrix/     - validated adjacency views, permutation, CSV and gonum conversion
//	signature/  - 64-bit mixing and order-independent multiset folding
//	refine/     - node, edge and walk-count refinement engines
//	compare/    - NodeHashCompare, EdgeHashCompare, WalkHashCompare
//	builder/    - seeded generators: G(n,p), cycles, paths, stars, relabellings
//	experiment/ - scenario catalogue, parallel runner, CSV/YAML/metrics reports
//	cmd/isohash - the command line front end
//
// Quick ASCII example:
//
//	    0───1       1───0
//	    │           │
//	    2           2
//
//	two labellings of the same path compare equal under every kind.
//
// The hashes are not certificates: non-isomorphic graphs that colour
// refinement cannot separate (for instance two regular graphs of the same
// degree) share a signature.
//
//	go get github.com/HarrisonGreenlee/isohash
package isohash
