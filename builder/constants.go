// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodDisjointCycles is the canonical name for the DisjointCycles constructor.
	MethodDisjointCycles = "DisjointCycles"
	// MethodErdosRenyi is the canonical name for the ErdosRenyi constructor.
	MethodErdosRenyi = "ErdosRenyi"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodPermutation is the canonical name for Permutation.
	MethodPermutation = "Permutation"
	// MethodIsomorphic is the canonical name for Isomorphic.
	MethodIsomorphic = "Isomorphic"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
// A star requires one center plus at least one leaf (2 nodes total).
const MinStarNodes = 2

// MinCompleteNodes is the smallest size accepted by Complete.
const MinCompleteNodes = 1

// MinErdosRenyiNodes is the smallest size accepted by ErdosRenyi.
const MinErdosRenyiNodes = 1

// MinWheelNodes is the smallest wheel: a hub plus a triangle rim.
const MinWheelNodes = 4

// MinGridDim is the smallest row or column count accepted by Grid.
const MinGridDim = 1

// MinPartitionSize is the smallest side accepted by CompleteBipartite.
const MinPartitionSize = 1

// MinRandomRegularNodes is the smallest size accepted by RandomRegular.
const MinRandomRegularNodes = 1

// maxStubMatchingAttempts bounds RandomRegular's reshuffles. A uniform
// pairing is simple with probability about exp((1-d²)/4).
const maxStubMatchingAttempts = 4096

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for the probability parameter p in
// ErdosRenyi construction, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the probability parameter p in
// ErdosRenyi construction, inclusive.
const MaxProbability = 1.0

// seedStreamSalt decorrelates the two PCG words derived from one seed.
const seedStreamSalt uint64 = 0x9e3779b97f4a7c15
