// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into the shared audio.Source
// interface, using github.com/jfreymuth/oggvorbis.
package vorbis
