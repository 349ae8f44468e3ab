// SPDX-License-Identifier: EPL-2.0

package units

import "math"

// Interval is a pure frequency ratio, independent of any sample rate.
type Interval struct {
	// Ratio between the upper and lower frequency.
	Ratio float64
}

var (
	// Unison leaves a frequency unchanged.
	Unison = Interval{Ratio: 1}
	// Octave doubles a frequency.
	Octave = Interval{Ratio: 2}
	// Semitone is one step of twelve-tone equal temperament.
	Semitone = EdoNote(12, 1)
	// Tone is two semitones.
	Tone = EdoNote(12, 2)
)

// NewInterval builds an interval from an explicit ratio.
func NewInterval(ratio float64) Interval {
	return Interval{Ratio: ratio}
}

// EdoNote is the interval spanning n steps of an equal division of the
// octave into edo parts: 2^(n/edo). Fractional n gives pitch bends.
func EdoNote(edo int, n float64) Interval {
	return Interval{Ratio: math.Pow(2, n/float64(edo))}
}

// Mul stacks two intervals.
func (i Interval) Mul(j Interval) Interval {
	return Interval{Ratio: i.Ratio * j.Ratio}
}

// Inv flips the interval downwards.
func (i Interval) Inv() Interval {
	return Interval{Ratio: 1 / i.Ratio}
}
