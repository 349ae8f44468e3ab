// SPDX-License-Identifier: EPL-2.0

package units

// SampleRate is the number of sample frames per second a graph runs at.
// A graph is bound to exactly one rate for its lifetime; every Freq and
// Time built for the graph must use the same rate.
type SampleRate int

const (
	// Telephone quality.
	Telephone SampleRate = 8000
	// CD is the most common audio rate, 44.1 kHz.
	CD SampleRate = 44100
	// Studio rate, 48 kHz.
	Studio SampleRate = 48000
)

// Float returns the rate in Hz as a float64.
func (sr SampleRate) Float() float64 {
	return float64(sr)
}
