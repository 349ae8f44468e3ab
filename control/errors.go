// SPDX-License-Identifier: EPL-2.0

package control

import "errors"

var (
	ErrEmptySequence   = errors.New("interval sequence must not be empty")
	ErrNegativeTime    = errors.New("intervals must not be negative")
	ErrNonPositiveTime = errors.New("period must be positive")
)
