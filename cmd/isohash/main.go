// SPDX-License-Identifier: MIT

// Command isohash compares adjacency matrices by refinement hashing and runs
// the randomized graph experiments.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
