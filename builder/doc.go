// Package builder produces adjacency fixtures for the hashing engines:
// seeded random graphs, deterministic topologies and random relabellings.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(directed, bopts, cons...): runs constructors on a gonum simple
//     graph and returns a matrix.Adjacency.
//     – Constructor: a function that adds a topology to the canvas.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed (PCG from math/rand/v2), WithRand.
//   - Topologies:
//     – ErdosRenyi(n, p): Gilbert G(n,p) via gonum's gen.Gnp.
//     – RandomRegular(n, d): stub matching, undirected only.
//     – Cycle, Path, Star, Wheel, Grid, Complete, CompleteBipartite,
//     DisjointCycles.
//   - Relabelling:
//     – Permutation(n), Isomorphic(adj).
//   - Validation helpers:
//     – validateMin, validateProbability, validateRand.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical matrices.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors wrapped with method context for invalid build parameters.
//
// Composition:
//
//	two triangles side by side (vertices 0..2 and 3..5):
//	am, err := builder.Build(false, nil, builder.Cycle(3), builder.Cycle(3))
package builder
