// SPDX-License-Identifier: EPL-2.0

package units

// Time is a duration stored as an exact, possibly fractional, sample count.
// Like Freq, it is bound to a sample rate at construction so later
// arithmetic never re-derives the rate.
type Time struct {
	// Frames is the duration in sample frames.
	Frames float64
}

// Seconds binds a duration in seconds to a sample rate.
func Seconds(s float64, rate SampleRate) Time {
	return Time{Frames: s * rate.Float()}
}

// Samples builds a Time directly from a frame count.
func Samples(n float64) Time {
	return Time{Frames: n}
}

// Zero is the zero duration.
func Zero() Time {
	return Time{}
}

// Dur converts back to seconds for the rate the time was built with.
func (t Time) Dur(rate SampleRate) float64 {
	return t.Frames / rate.Float()
}

// Count is the duration as a whole number of frames. A fractional duration
// truncates: a render covers only the samples that fit in it completely.
func (t Time) Count() int {
	return int(t.Frames)
}

// Add sums two times bound to the same rate.
func (t Time) Add(u Time) Time {
	return Time{Frames: t.Frames + u.Frames}
}

// Mul scales the duration by a plain factor.
func (t Time) Mul(k float64) Time {
	return Time{Frames: t.Frames * k}
}
