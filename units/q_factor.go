// SPDX-License-Identifier: EPL-2.0

package units

import "math"

// QFactor controls the resonance or bandwidth of a biquad filter design.
// Higher values give a narrower, more resonant response.
type QFactor struct {
	// Q is the raw quality factor.
	Q float64
}

// Flat is 1/√2, the highest Q at which a low-pass or high-pass design has
// no resonant peak.
var Flat = QFactor{Q: 1 / math.Sqrt2}

// NewQ builds a Q factor from its raw value.
func NewQ(q float64) QFactor {
	return QFactor{Q: q}
}

// NewQBandwidth derives Q from a bandwidth given in octaves, measured
// between the -3 dB points: Q = √r / (r − 1) with r = 2^octaves.
//
// A bandwidth of exactly zero octaves gives r = 1 and a division by zero;
// the non-finite result is returned as-is rather than rejected, matching
// how such filters have always been configured here. Callers that cannot
// rule the case out should check math.IsInf on the result.
func NewQBandwidth(octaves float64) QFactor {
	r := math.Pow(2, octaves)
	return QFactor{Q: math.Sqrt(r) / (r - 1)}
}

// NewQShelfSlope derives Q for shelf designs from the shelf slope S and the
// shelf volume. S = 1 is the steepest slope that stays monotonic.
func NewQShelfSlope(slope float64, vol Vol) QFactor {
	amp := math.Sqrt(vol.Gain)
	inv := (amp+1/amp)*(1/slope-1) + 2
	return QFactor{Q: 1 / math.Sqrt(inv)}
}
