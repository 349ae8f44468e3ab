// SPDX-License-Identifier: EPL-2.0

package signal

import "github.com/ik5/audsynth/units"

// Frame is one instant's sample values for the left and right channel.
// Mono nodes fill both channels with the same value.
type Frame [2]float64

// Mono builds a frame carrying v on both channels.
func Mono(v float64) Frame {
	return Frame{v, v}
}

// Add sums two frames elementwise.
func (f Frame) Add(g Frame) Frame {
	return Frame{f[0] + g[0], f[1] + g[1]}
}

// Scale multiplies both channels by k.
func (f Frame) Scale(k float64) Frame {
	return Frame{f[0] * k, f[1] * k}
}

// Signal is a node in the graph. See the package docs for the contract:
// Get is idempotent, Advance moves forward one sample, Retrigger resets to
// the initial configured phase without discarding configuration.
type Signal interface {
	Get() Frame
	Advance()
	Retrigger()
}

// Stopper is a node that can begin a graceful tail instead of cutting off.
type Stopper interface {
	Signal
	Stop()
}

// Doner is a node that can report it will only produce silence from now on.
type Doner interface {
	Signal
	Done() bool
}

// Voice is an independently releasable node: it can be stopped and reports
// its own completion. This is what a polyphonic manager holds.
type Voice interface {
	Signal
	Stop()
	Done() bool
}

// FreqSignal is a node with an adjustable base frequency, such as an
// oscillator, so schedulers can re-pitch it between notes.
type FreqSignal interface {
	Signal
	Freq() units.Freq
	SetFreq(units.Freq)
}
