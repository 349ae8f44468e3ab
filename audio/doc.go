// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoding seam between the synthesis engine and
// the codec collaborators in formats/.
//
// # Source
//
// A Source is a stream of interleaved float32 samples in [-1, 1] at an
// authored sample rate:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Every format decoder returns one. The engine itself never streams from a
// Source sample-by-sample; buffers are collected up front with ReadAll (or
// buffer.FromSource) and then read by graph nodes.
//
// # Rate conversion
//
// A decoded file rarely matches the graph's rate. Resampler converts a
// Source to a target rate with cubic interpolation before collection:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	buf, _ := buffer.FromSource(audio.NewResampler(src, 44100))
//
// MonoMixer averages a multi-channel Source down to one channel.
//
// # Registry
//
// Registry maps format keys ("wav", "mp3", ...) to decoders, letting hosts
// pick a decoder from a file extension. The root package wires all built-in
// formats into a default registry.
package audio
