// SPDX-License-Identifier: EPL-2.0

package units

import "math"

// Vol is a linear gain factor. Unit gain corresponds to 0 dB.
type Vol struct {
	// Gain multiplier applied to sample values.
	Gain float64
}

var (
	// Silent is zero gain.
	Silent = Vol{Gain: 0}
	// Half amplitude.
	Half = Vol{Gain: 0.5}
	// Full is unit gain.
	Full = Vol{Gain: 1}
)

// NewVol builds a volume from a plain gain factor.
func NewVol(gain float64) Vol {
	return Vol{Gain: gain}
}

// NewVolDB converts decibels into linear gain: gain = 10^(dB/20).
func NewVolDB(db float64) Vol {
	return Vol{Gain: math.Pow(10, db/20)}
}

// NewVolVelocity linearly maps a MIDI velocity (0..127) to gain. Not the
// only sensible interpretation of velocity, but the simplest.
func NewVolVelocity(vel uint8) Vol {
	return Vol{Gain: float64(vel) / 127}
}

// DB returns the gain in decibels.
func (v Vol) DB() float64 {
	return 20 * math.Log10(v.Gain)
}

// Mul stacks two gain stages.
func (v Vol) Mul(w Vol) Vol {
	return Vol{Gain: v.Gain * w.Gain}
}
