// SPDX-License-Identifier: EPL-2.0

// Package buffer implements in-memory sample buffers and the nodes that
// play them back: the policy-driven Reader and the time-stretching Stretch.
//
// A Buffer is an ordered sequence of frames tagged with the rate it was
// authored at. It is treated as immutable once handed to a reader, so any
// number of readers may share one buffer concurrently; each reader carries
// its own position.
//
// A Reader walks the buffer one frame per sample. Its exhaustion policy
// decides what happens at the end:
//
//   - Once: silence past the end, Done reported at the end, Stop truncates
//     immediately.
//   - Loop: indexes modulo the length forever, reproducing the content
//     bit-identically on every cycle.
//
// Stretch reads the buffer at a fractional rate factor: below 1 slows down
// and lowers pitch, above 1 speeds up and raises it. The read position
// accumulates a real-valued remainder and output samples are interpolated
// fresh on every Get (nearest, linear, cubic or Hermite), so peeking twice
// within a sample never disturbs playback. At rate 1.0 with linear
// interpolation the output reproduces the source exactly.
package buffer
