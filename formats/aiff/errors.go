// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile     = errors.New("not an AIFF file")
	ErrUnsupportedAiff = errors.New("only 16-bit PCM AIFF supported")
)
