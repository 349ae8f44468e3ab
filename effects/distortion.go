// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audsynth/signal"
)

// Shaper is a memoryless waveshaping function applied per channel. A shaper
// must map zero to zero or a silent input produces a standing offset.
type Shaper func(float64) float64

// InfClip maps every positive value to 1 and every negative value to -1.
func InfClip() Shaper {
	return func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return math.Copysign(1, x)
	}
}

// Clip clamps values to [-threshold, threshold] and renormalizes to
// [-1, 1].
func Clip(threshold float64) (Shaper, error) {
	if threshold <= 0 {
		return nil, ErrBadThreshold
	}
	return func(x float64) float64 {
		return math.Min(threshold, math.Max(-threshold, x)) / threshold
	}, nil
}

// Atan shapes with arctan(shape*x), renormalized so full scale stays full
// scale in the limit. Larger shapes drive harder.
func Atan(shape float64) Shaper {
	return func(x float64) float64 {
		return math.Atan(shape*x) / (math.Pi / 2)
	}
}

// Distortion applies a Shaper to every sample of a child signal.
type Distortion struct {
	sgn   signal.Signal
	shape Shaper
}

// NewDistortion wraps sgn with a shaping function.
func NewDistortion(sgn signal.Signal, shape Shaper) *Distortion {
	return &Distortion{sgn: sgn, shape: shape}
}

func (d *Distortion) Get() signal.Frame {
	f := d.sgn.Get()
	return signal.Frame{d.shape(f[0]), d.shape(f[1])}
}

func (d *Distortion) Advance()   { d.sgn.Advance() }
func (d *Distortion) Retrigger() { d.sgn.Retrigger() }

// Stop forwards to the child if it supports stopping.
func (d *Distortion) Stop() {
	if st, ok := d.sgn.(signal.Stopper); ok {
		st.Stop()
	}
}

// Done forwards to the child; a child without a completion report never
// finishes.
func (d *Distortion) Done() bool {
	if dn, ok := d.sgn.(signal.Doner); ok {
		return dn.Done()
	}
	return false
}
