// SPDX-License-Identifier: EPL-2.0

package units

import "math"

// A4 is the standard concert pitch in Hz.
const A4 = 440.0

// a4MidiNote is the MIDI note number of A4.
const a4MidiNote = 69

// Freq is a frequency normalized to cycles per sample at construction time.
// Because the sample rate is folded in once, scaling by an Interval or adding
// frequencies never re-derives the rate and cannot drift.
type Freq struct {
	// PerSample is the number of cycles advanced every sample.
	PerSample float64
}

// NewFreq binds a frequency in Hz to a sample rate.
func NewFreq(hz float64, rate SampleRate) Freq {
	return Freq{PerSample: hz / rate.Float()}
}

// NoteFreq converts a MIDI note number into a frequency bound to rate,
// using twelve-tone equal temperament with A4 = 440 Hz.
func NoteFreq(note int, rate SampleRate) Freq {
	hz := A4 * math.Pow(2, float64(note-a4MidiNote)/12)
	return NewFreq(hz, rate)
}

// Hz converts back to Hz for the rate the frequency was built with.
func (f Freq) Hz(rate SampleRate) float64 {
	return f.PerSample * rate.Float()
}

// Angular returns the angular frequency ω = 2π·cycles/sample, as used by
// filter design formulas.
func (f Freq) Angular() float64 {
	return 2 * math.Pi * f.PerSample
}

// Mul scales the frequency by an interval.
func (f Freq) Mul(i Interval) Freq {
	return Freq{PerSample: f.PerSample * i.Ratio}
}

// Add sums two frequencies bound to the same rate.
func (f Freq) Add(g Freq) Freq {
	return Freq{PerSample: f.PerSample + g.PerSample}
}

// Period returns the duration of a single cycle.
func (f Freq) Period() Time {
	return Time{Frames: 1 / f.PerSample}
}
