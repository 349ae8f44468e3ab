// SPDX-License-Identifier: EPL-2.0

// Package units implements the value types a signal graph is built from:
// sample rates, frequencies, times, musical intervals, volumes and filter
// Q factors.
//
// # Binding to a sample rate
//
// Every graph runs at one fixed sample rate for its whole lifetime. To keep
// arithmetic on frequencies and times from drifting, both are normalized at
// construction:
//
//   - Freq stores cycles per sample. Scaling it by an Interval or adding two
//     frequencies never needs the sample rate again.
//   - Time stores a (fractional) sample count. Converting back to seconds is
//     a single division by the rate it was built with.
//
// There is no ambient default rate. Constructors take the rate explicitly,
// and the caller threads one units.SampleRate value through the whole graph:
//
//	rate := units.CD
//	freq := units.NewFreq(440, rate)
//	dur := units.Seconds(1.5, rate)
//
// # Tuning helpers
//
// Interval is a pure frequency ratio. EdoNote builds intervals in any equal
// division of the octave, and NoteFreq converts a MIDI note number into a
// frequency using A4 = 440 Hz:
//
//	fifth := units.EdoNote(12, 7)
//	a5 := units.NewFreq(440, rate).Mul(units.Octave)
//
// # Volume and Q
//
// Vol is linear gain with decibel conversion. QFactor parameterizes biquad
// filter designs and can be derived from a bandwidth in octaves or from a
// shelf slope.
package units
