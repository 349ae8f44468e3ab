// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	ErrEmptyBuffer     = errors.New("buffer must hold at least one frame")
	ErrNonPositiveRate = errors.New("stretch rate factor must be positive")
	ErrBadChannels     = errors.New("channel count must be 1 or 2")
)
