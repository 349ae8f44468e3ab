// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into the shared audio.Source interface,
// using github.com/go-audio/aiff.
//
// Only 16-bit PCM material is supported.
package aiff
