// SPDX-License-Identifier: MIT

package experiment

import "errors"

// ErrUnknownScenario is returned when a scenario name is not in the catalogue.
var ErrUnknownScenario = errors.New("experiment: unknown scenario")

// ErrInvalidScenario is returned by Scenario.Validate for unusable parameters.
var ErrInvalidScenario = errors.New("experiment: invalid scenario")
