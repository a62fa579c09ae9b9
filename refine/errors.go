// SPDX-License-Identifier: MIT

package refine

import (
	"fmt"

	"github.com/HarrisonGreenlee/isohash/matrix"
)

// ErrNegativeRounds is returned when a round count below zero is requested.
var ErrNegativeRounds = fmt.Errorf("%w: refine: negative round count", matrix.ErrValidation)

// ErrUnknownMode is returned for a Mode outside ModeNode..ModeWalk.
var ErrUnknownMode = fmt.Errorf("%w: refine: unknown mode", matrix.ErrValidation)
