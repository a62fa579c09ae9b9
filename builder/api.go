// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(directed, bopts, cons...). Creates the canvas, resolves cfg, runs cons in order.
//   - The canvas is a gonum simple graph; the result is handed back as a matrix.Adjacency.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Vertex order:
//   - Constructors obtain nodes from g.NewNode(); on a fresh simple graph these
//     are 0,1,2,... in creation order, which is also the row order of the
//     resulting Adjacency. Composed constructors therefore produce disjoint
//     unions laid out block by block.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/HarrisonGreenlee/isohash/matrix"
)

// Constructor adds a deterministic topology to the canvas g using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Never emit self-loops (simple graphs reject them).
//   - Preserve determinism for the same config and call order.
type Constructor func(g graph.Builder, cfg builderConfig) error

// canvas is what Build hands to constructors and then reads back: both
// simple.DirectedGraph and simple.UndirectedGraph satisfy it.
type canvas interface {
	graph.Builder
	graph.Graph
}

// Build creates a directed or undirected simple graph, resolves the builder
// configuration from bopts, applies all constructors in order and converts
// the canvas to an Adjacency view of the same directedness.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//
// Complexity:
//   - Σ cost of each constructor, plus O(n²) for the conversion.
func Build(directed bool, bopts []BuilderOption, cons ...Constructor) (*matrix.Adjacency, error) {
	var g canvas
	if directed {
		g = simple.NewDirectedGraph()
	} else {
		g = simple.NewUndirectedGraph()
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	am, err := matrix.FromGraph(g)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return am, nil
}

// addNodes appends n fresh nodes to g and returns them in creation order.
func addNodes(g graph.Builder, n int) []graph.Node {
	nodes := make([]graph.Node, n)
	for i := range nodes {
		nd := g.NewNode()
		g.AddNode(nd)
		nodes[i] = nd
	}
	return nodes
}

// link adds u→v (or u–v on undirected canvases).
func link(g graph.Builder, u, v graph.Node) {
	g.SetEdge(g.NewEdge(u, v))
}

// linkBoth adds u–v, mirrored as u→v and v→u on directed canvases.
func linkBoth(g graph.Builder, u, v graph.Node) {
	link(g, u, v)
	if _, directed := g.(graph.Directed); directed {
		link(g, v, u)
	}
}
