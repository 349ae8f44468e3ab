// SPDX-License-Identifier: EPL-2.0

// Package sigtest provides small deterministic signal nodes for testing
// combinators, schedulers and the voice manager.
package sigtest

import "github.com/ik5/audsynth/signal"

// Const always produces the same mono value.
type Const struct {
	V float64
}

func (c *Const) Get() signal.Frame { return signal.Mono(c.V) }
func (c *Const) Advance()          {}
func (c *Const) Retrigger()        {}

// Counter produces the zero-based index of the current sample, so tests
// can assert exactly which sample a node saw.
type Counter struct {
	n float64
}

func (c *Counter) Get() signal.Frame { return signal.Mono(c.n) }
func (c *Counter) Advance()          { c.n++ }
func (c *Counter) Retrigger()        { c.n = 0 }

// Impulse produces 1 on the first sample and silence afterwards.
type Impulse struct {
	n int
}

func (i *Impulse) Get() signal.Frame {
	if i.n == 0 {
		return signal.Mono(1)
	}
	return signal.Frame{}
}
func (i *Impulse) Advance()   { i.n++ }
func (i *Impulse) Retrigger() { i.n = 0 }

// FiniteVoice produces a constant value for Tail samples after Stop and
// then reports done, a stand-in for a voice with a release tail.
type FiniteVoice struct {
	V    float64
	Tail int

	stopped bool
	left    int
}

func (v *FiniteVoice) Get() signal.Frame {
	if v.Done() {
		return signal.Frame{}
	}
	return signal.Mono(v.V)
}

func (v *FiniteVoice) Advance() {
	if v.stopped && v.left > 0 {
		v.left--
	}
}

func (v *FiniteVoice) Retrigger() {
	v.stopped = false
	v.left = 0
}

func (v *FiniteVoice) Stop() {
	if !v.stopped {
		v.stopped = true
		v.left = v.Tail
	}
}

func (v *FiniteVoice) Done() bool {
	return v.stopped && v.left == 0
}
