// SPDX-License-Identifier: EPL-2.0

package envelope

import "errors"

var (
	ErrNegativeDuration = errors.New("envelope durations must not be negative")
	ErrSustainRange     = errors.New("sustain level must be within [0, 1]")
)
