// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HarrisonGreenlee/isohash/builder"
)

// TestBuild_CanvasRoundTrip checks that the canvas built by constructors is
// read back with its directedness and block layout intact.
func TestBuild_CanvasRoundTrip(t *testing.T) {
	t.Parallel()

	for _, directed := range []bool{false, true} {
		am, err := builder.Build(directed, nil, builder.Path(3), builder.Cycle(3))
		require.NoError(t, err)
		require.Equal(t, 6, am.Order())
		require.Equal(t, directed, am.Directed())

		// Path block on 0..2, cycle block on 3..5.
		require.True(t, am.Has(0, 1))
		require.True(t, am.Has(1, 2))
		require.True(t, am.Has(5, 3))
		require.False(t, am.Has(2, 3), "blocks must stay disjoint")
		require.Equal(t, !directed, am.Has(1, 0))
	}
}
