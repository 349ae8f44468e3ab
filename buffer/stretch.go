// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"math"

	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/utils"
)

// Interpolation selects how Stretch reconstructs samples between frames.
type Interpolation int

const (
	// Nearest takes the closest frame; cheap, with audible aliasing that
	// can be a deliberate bit-crush effect.
	Nearest Interpolation = iota
	// Linear blends the two surrounding frames.
	Linear
	// Cubic uses a four-point Catmull-Rom kernel.
	Cubic
	// Hermite uses a four-point Hermite kernel, slightly smoother than
	// Cubic on noisy material.
	Hermite
)

// Stretch plays a buffer at a fractional rate factor: 0.5 plays half speed
// an octave down, 2 double speed an octave up. The read position carries a
// real-valued remainder; Get interpolates the surrounding frames fresh on
// every call and all mutation stays in Advance.
type Stretch struct {
	buf    *Buffer
	mode   Exhaust
	interp Interpolation
	rate   float64
	pos    float64
}

// NewStretch attaches a stretching reader. The rate factor must be
// positive; it can be changed later with SetRate.
func NewStretch(buf *Buffer, rate float64, mode Exhaust, interp Interpolation) (*Stretch, error) {
	if rate <= 0 {
		return nil, ErrNonPositiveRate
	}
	return &Stretch{buf: buf, mode: mode, interp: interp, rate: rate}, nil
}

// Rate returns the current rate factor.
func (s *Stretch) Rate() float64 { return s.rate }

// SetRate swaps the rate factor mid-playback; values at or below zero are
// ignored. Takes effect on the next Advance.
func (s *Stretch) SetRate(rate float64) {
	if rate > 0 {
		s.rate = rate
	}
}

// Pos is the current fractional read position in source frames.
func (s *Stretch) Pos() float64 { return s.pos }

func (s *Stretch) Get() signal.Frame {
	idx := int(math.Floor(s.pos))
	t := s.pos - float64(idx)

	switch s.interp {
	case Nearest:
		if t >= 0.5 {
			idx++
		}
		return s.buf.at(idx, s.mode)

	case Linear:
		x1 := s.buf.at(idx, s.mode)
		x2 := s.buf.at(idx+1, s.mode)
		return signal.Frame{
			utils.LinearInterpolate(x1[0], x2[0], t),
			utils.LinearInterpolate(x1[1], x2[1], t),
		}

	case Hermite:
		x0, x1, x2, x3 := s.window(idx)
		return signal.Frame{
			utils.HermiteInterpolate(x0[0], x1[0], x2[0], x3[0], t),
			utils.HermiteInterpolate(x0[1], x1[1], x2[1], x3[1], t),
		}

	default: // Cubic
		x0, x1, x2, x3 := s.window(idx)
		return signal.Frame{
			utils.CubicInterpolate(x0[0], x1[0], x2[0], x3[0], t),
			utils.CubicInterpolate(x0[1], x1[1], x2[1], x3[1], t),
		}
	}
}

func (s *Stretch) window(idx int) (x0, x1, x2, x3 signal.Frame) {
	return s.buf.at(idx-1, s.mode), s.buf.at(idx, s.mode),
		s.buf.at(idx+1, s.mode), s.buf.at(idx+2, s.mode)
}

func (s *Stretch) Advance() {
	s.pos += s.rate
	if s.mode == Loop {
		n := float64(s.buf.Len())
		if s.pos >= n {
			s.pos = math.Mod(s.pos, n)
		}
	}
}

// Retrigger rewinds to the start of the buffer.
func (s *Stretch) Retrigger() {
	s.pos = 0
}

// Stop truncates playback immediately, like Reader.Stop.
func (s *Stretch) Stop() {
	s.mode = Once
	s.pos = float64(s.buf.Len())
}

// Done reports completion for play-once stretches.
func (s *Stretch) Done() bool {
	return s.mode == Once && s.pos >= float64(s.buf.Len())
}
