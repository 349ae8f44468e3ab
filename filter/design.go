// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/audsynth/units"
)

// Coefficients of a biquad filter, normalized so a0 = 1.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// normalize divides everything through by a0.
func normalize(a0, a1, a2, b0, b1, b2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// Identity passes the signal through unaltered.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// LowPass cuts frequencies above freq. Low Q gives a deeper cut; high Q a
// resonant peak at the cutoff. units.Flat is the flattest passband.
func LowPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	alpha := ws / (2 * q.Q)
	b1 := 1 - wc
	b0 := b1 / 2

	return normalize(1+alpha, -2*wc, 1-alpha, b0, b1, b0)
}

// HighPass cuts frequencies below freq; Q as in LowPass.
func HighPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	alpha := ws / (2 * q.Q)
	b1 := 1 + wc
	b0 := b1 / 2

	return normalize(1+alpha, -2*wc, 1-alpha, b0, -b1, b0)
}

// BandPass passes a band around freq with 0 dB peak gain; Q sets the
// bandwidth (see units.NewQBandwidth).
func BandPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	alpha := ws / (2 * q.Q)

	return normalize(1+alpha, -2*wc, 1-alpha, alpha, 0, -alpha)
}

// Notch removes the band around freq; Q sets the bandwidth.
func Notch(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	alpha := ws / (2 * q.Q)
	a1 := -2 * wc

	return normalize(1+alpha, a1, 1-alpha, 1, a1, 1)
}

// AllPass leaves the magnitude response flat and shifts phase by π/2 at
// freq; higher Q makes the phase transition steeper.
func AllPass(freq units.Freq, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	alpha := ws / (2 * q.Q)
	a0 := 1 + alpha
	a1 := -2 * wc
	a2 := 1 - alpha

	return normalize(a0, a1, a2, a2, a1, a0)
}

// Peaking boosts or cuts the band around freq by vol; Q sets the bandwidth.
// The gain must be positive; to remove a band entirely use Notch.
func Peaking(freq units.Freq, vol units.Vol, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())
	a1 := -2 * wc

	amp := math.Sqrt(vol.Gain)
	alpha := ws / (2 * q.Q)
	mul := alpha * amp
	div := alpha / amp

	return normalize(1+div, a1, 1-div, 1+mul, a1, 1-mul)
}

// LowShelf applies vol to everything below the corner frequency.
func LowShelf(freq units.Freq, vol units.Vol, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())

	amp := math.Sqrt(vol.Gain)
	mul := math.Sqrt(amp) * ws / q.Q

	nxt := amp + 1
	prv := amp - 1
	nxtWC := nxt * wc
	prvWC := prv * wc

	add := nxt + prvWC
	sub := nxt - prvWC

	return normalize(
		add+mul,
		-2*(prv+nxtWC),
		add-mul,
		amp*(sub+mul),
		2*amp*(prv-nxtWC),
		amp*(sub-mul),
	)
}

// HighShelf applies vol to everything above the corner frequency.
func HighShelf(freq units.Freq, vol units.Vol, q units.QFactor) Coefficients {
	ws, wc := math.Sincos(freq.Angular())

	amp := math.Sqrt(vol.Gain)
	mul := math.Sqrt(amp) * ws / q.Q

	nxt := amp + 1
	prv := amp - 1
	nxtWC := nxt * wc
	prvWC := prv * wc

	add := nxt + prvWC
	sub := nxt - prvWC

	return normalize(
		sub+mul,
		2*(prv-nxtWC),
		sub-mul,
		amp*(add+mul),
		-2*amp*(prv+nxtWC),
		amp*(add-mul),
	)
}
