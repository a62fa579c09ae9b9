// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/HarrisonGreenlee/isohash/matrix"
)

// ErrModeMismatch is returned when one graph is directed and the other is not.
var ErrModeMismatch = fmt.Errorf("%w: compare: directed and undirected graphs", matrix.ErrValidation)

// ErrUnknownKind is returned by ParseKind and Run for an unrecognised Kind.
var ErrUnknownKind = fmt.Errorf("%w: compare: unknown hash kind", matrix.ErrValidation)
