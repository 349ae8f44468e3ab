// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	ErrShortDelay   = errors.New("delay must be at least one sample")
	ErrBadThreshold = errors.New("clip threshold must be positive")
)
