// SPDX-License-Identifier: MIT
// Package: isohash/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a rim cycle of n-1 vertices plus one hub.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim vertices come first (ascending), the hub is the last node added.
//   • Builds the rim as a C_{n-1} ring, then spokes hub–rim[i] in index order.
//     For directed canvases each spoke is mirrored.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import "gonum.org/v1/gonum/graph"

// Wheel returns a Constructor that builds the wheel graph Wₙ.
func Wheel(n int) Constructor {
	return func(g graph.Builder, _ builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		rim := addRing(g, n-1)
		hub := addNodes(g, 1)[0]
		for _, v := range rim {
			linkBoth(g, hub, v)
		}

		return nil
	}
}
