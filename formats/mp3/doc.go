// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into the shared audio.Source interface.
//
// It uses github.com/hajimehoshi/go-mp3, which always outputs 16-bit
// stereo PCM regardless of how the file was encoded.
package mp3
