// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM WAV files.
//
// It uses the github.com/go-audio/wav library for chunk handling, exposing
// decoding through the audio.Source interface shared by every format:
//
//	f, _ := os.Open("kick.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	buf, err := buffer.FromSource(src)
//
// and encoding from a rendered buffer:
//
//	out, _ := os.Create("render.wav")
//	err := wav.Encode(out, buf)
//
// Encode writes 16-bit PCM. The writer must be an io.WriteSeeker (a file
// qualifies) because the RIFF header is finalized after the data chunk.
package wav
