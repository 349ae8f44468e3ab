// SPDX-License-Identifier: EPL-2.0

package control

import (
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// Metronome fires at a fixed period, forever. It produces no samples;
// instead callers poll Fired after each Advance. It shares the graph's
// per-sample clock, so ticks stay sample-accurate indefinitely.
type Metronome struct {
	period float64
	since  float64
	fired  bool
}

// NewMetronome builds a metronome with the given period, which must be
// positive.
func NewMetronome(period units.Time) (*Metronome, error) {
	if period.Frames <= 0 {
		return nil, ErrNonPositiveTime
	}
	return &Metronome{period: period.Frames}, nil
}

// Fired reports whether the metronome ticked on the last Advance.
func (m *Metronome) Fired() bool { return m.fired }

func (m *Metronome) Get() signal.Frame { return signal.Frame{} }

func (m *Metronome) Advance() {
	m.since++
	m.fired = m.since >= m.period
	if m.fired {
		m.since -= m.period
	}
}

func (m *Metronome) Retrigger() {
	m.since = 0
	m.fired = false
}

// Timer fires exactly once, after its period elapses. Same polling
// interface as Metronome.
type Timer struct {
	period float64
	since  float64
	fired  bool
	done   bool
}

// NewTimer builds a one-shot timer with the given period, which must be
// positive.
func NewTimer(period units.Time) (*Timer, error) {
	if period.Frames <= 0 {
		return nil, ErrNonPositiveTime
	}
	return &Timer{period: period.Frames}, nil
}

// Fired reports whether the timer went off on the last Advance; it is true
// for exactly one sample.
func (t *Timer) Fired() bool { return t.fired }

func (t *Timer) Get() signal.Frame { return signal.Frame{} }

func (t *Timer) Advance() {
	if t.done {
		t.fired = false
		return
	}
	t.since++
	if t.since >= t.period {
		t.fired = true
		t.done = true
	}
}

func (t *Timer) Retrigger() {
	t.since = 0
	t.fired = false
	t.done = false
}

// Done reports whether the timer has already fired.
func (t *Timer) Done() bool { return t.done }
