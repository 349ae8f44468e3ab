// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// Phase is the current stage of an envelope.
type Phase int

const (
	Attack Phase = iota
	Decay
	Sustain
	Release
	Done
)

func (p Phase) String() string {
	switch p {
	case Attack:
		return "attack"
	case Decay:
		return "decay"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	default:
		return "done"
	}
}

// ADSR is a linear attack-decay-sustain-release level generator. As a
// signal it produces its level on both channels; Level gives the raw value
// for driving non-amplitude parameters such as a filter cutoff.
type ADSR struct {
	attack  float64 // durations in sample frames
	decay   float64
	release float64
	sustain float64

	phase   Phase
	elapsed float64 // frames into the current phase
	level   float64
	relFrom float64 // level captured when Stop was called
}

// NewADSR builds an envelope from phase durations and a sustain level in
// [0, 1]. Negative durations are rejected; zero durations are allowed and
// complete on the next sample.
func NewADSR(attack, decay units.Time, sustain float64, release units.Time) (*ADSR, error) {
	if attack.Frames < 0 || decay.Frames < 0 || release.Frames < 0 {
		return nil, ErrNegativeDuration
	}
	if sustain < 0 || sustain > 1 {
		return nil, ErrSustainRange
	}

	return &ADSR{
		attack:  attack.Frames,
		decay:   decay.Frames,
		release: release.Frames,
		sustain: sustain,
	}, nil
}

// NewAR builds the attack-release special case: the attack ramps straight
// to full level and holds there until Stop.
func NewAR(attack, release units.Time) (*ADSR, error) {
	return NewADSR(attack, units.Zero(), 1, release)
}

// Phase returns the current stage.
func (e *ADSR) Phase() Phase { return e.phase }

// Level returns the current envelope level in [0, 1].
func (e *ADSR) Level() float64 { return e.level }

func (e *ADSR) Get() signal.Frame {
	return signal.Mono(e.level)
}

func (e *ADSR) Advance() {
	if e.phase == Done {
		return
	}
	e.elapsed++
	e.settle()
}

// settle recomputes the level and walks phase transitions, carrying excess
// elapsed time forward so zero-duration phases collapse within one sample.
func (e *ADSR) settle() {
	for {
		switch e.phase {
		case Attack:
			if e.elapsed >= e.attack {
				e.elapsed -= e.attack
				e.level = 1
				e.phase = Decay
				continue
			}
			e.level = e.elapsed / e.attack
			return

		case Decay:
			if e.elapsed >= e.decay {
				e.elapsed -= e.decay
				e.level = e.sustain
				e.phase = Sustain
				continue
			}
			e.level = 1 - (1-e.sustain)*(e.elapsed/e.decay)
			return

		case Sustain:
			e.level = e.sustain
			return

		case Release:
			if e.elapsed >= e.release {
				e.level = 0
				e.phase = Done
				return
			}
			e.level = e.relFrom * (1 - e.elapsed/e.release)
			return

		default:
			e.level = 0
			return
		}
	}
}

// Retrigger resets to Attack from any phase, keeping the configured
// durations.
func (e *ADSR) Retrigger() {
	e.phase = Attack
	e.elapsed = 0
	e.level = 0
	e.relFrom = 0
}

// Stop begins the release tail from the current level. Stopping an envelope
// already releasing or done has no effect.
func (e *ADSR) Stop() {
	if e.phase == Release || e.phase == Done {
		return
	}
	e.relFrom = e.level
	e.elapsed = 0
	e.phase = Release
}

// Done reports true only in the terminal phase, after the release tail has
// fully decayed.
func (e *ADSR) Done() bool {
	return e.phase == Done
}
