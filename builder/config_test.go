// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	require.Nil(t, newBuilderConfig().rng)

	// 2. WithRand should set rng as given
	exp := rand.New(rand.NewPCG(1, 2))
	require.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)

	// 3. WithRand(nil) panics at option construction
	require.Panics(t, func() { WithRand(nil) })

	// 4. WithSeed should produce reproducible streams
	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}

	// 5. Later options override earlier ones
	last := newBuilderConfig(WithSeed(1), WithRand(exp)).rng
	require.Same(t, exp, last)
}

func TestNeighbouringSeedsDiffer(t *testing.T) {
	t.Parallel()

	a := newSeededRand(1)
	b := newSeededRand(2)
	require.NotEqual(t, a.Uint64(), b.Uint64())
}
