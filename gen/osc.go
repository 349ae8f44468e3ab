// SPDX-License-Identifier: EPL-2.0

package gen

import (
	"math"

	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// osc carries the phase bookkeeping shared by every waveform.
type osc struct {
	freq  units.Freq
	phase float64
}

func (o *osc) Freq() units.Freq { return o.freq }

// SetFreq re-pitches the oscillator without touching its phase, so a
// scheduler can glide or jump between notes click-free.
func (o *osc) SetFreq(f units.Freq) { o.freq = f }

func (o *osc) Advance() {
	o.phase += o.freq.PerSample
	o.phase -= math.Floor(o.phase)
}

func (o *osc) Retrigger() { o.phase = 0 }

// Sine is a sine wave oscillator.
type Sine struct {
	osc
}

// NewSine builds a sine oscillator at the given frequency.
func NewSine(freq units.Freq) *Sine {
	return &Sine{osc{freq: freq}}
}

func (s *Sine) Get() signal.Frame {
	return signal.Mono(math.Sin(2 * math.Pi * s.phase))
}

// Saw is a rising sawtooth oscillator, from -1 up to 1 over each cycle.
type Saw struct {
	osc
}

// NewSaw builds a sawtooth oscillator at the given frequency.
func NewSaw(freq units.Freq) *Saw {
	return &Saw{osc{freq: freq}}
}

func (s *Saw) Get() signal.Frame {
	return signal.Mono(2*s.phase - 1)
}

// Square is a pulse oscillator with adjustable duty cycle.
type Square struct {
	osc
	duty float64
}

// NewSquare builds a square oscillator with a 50% duty cycle.
func NewSquare(freq units.Freq) *Square {
	return &Square{osc: osc{freq: freq}, duty: 0.5}
}

// SetDuty moves the pulse width, clamped to [0, 1].
func (s *Square) SetDuty(duty float64) {
	s.duty = math.Min(1, math.Max(0, duty))
}

func (s *Square) Get() signal.Frame {
	if s.phase < s.duty {
		return signal.Mono(1)
	}
	return signal.Mono(-1)
}

// Triangle is a triangle wave oscillator.
type Triangle struct {
	osc
}

// NewTriangle builds a triangle oscillator at the given frequency.
func NewTriangle(freq units.Freq) *Triangle {
	return &Triangle{osc{freq: freq}}
}

func (t *Triangle) Get() signal.Frame {
	return signal.Mono(1 - 4*math.Abs(t.phase-0.5))
}
