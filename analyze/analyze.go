// SPDX-License-Identifier: EPL-2.0

// Package analyze measures rendered audio: RMS level, peak, and magnitude
// spectra via go-dsp's FFT. The engine's own tests lean on it to verify
// oscillator levels and filter responses, and hosts can use it for simple
// metering.
package analyze

import (
	"math"
	"math/cmplx"

	"github.com/maddyblue/go-dsp/fft"

	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// mix folds a frame to a single value by averaging the channels.
func mix(f signal.Frame) float64 {
	return (f[0] + f[1]) / 2
}

// RMS is the root-mean-square level of the rendered frames, channels
// averaged. A full-scale sine measures 1/√2.
func RMS(frames []signal.Frame) float64 {
	if len(frames) == 0 {
		return 0
	}

	var sum float64
	for _, f := range frames {
		v := mix(f)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(frames)))
}

// Peak is the largest absolute sample value across both channels.
func Peak(frames []signal.Frame) float64 {
	var peak float64
	for _, f := range frames {
		peak = math.Max(peak, math.Max(math.Abs(f[0]), math.Abs(f[1])))
	}
	return peak
}

// Spectrum returns the magnitude spectrum of the channel-averaged frames,
// len(frames)/2+1 bins from DC to Nyquist.
func Spectrum(frames []signal.Frame) []float64 {
	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = mix(f)
	}

	res := fft.FFTReal(data)
	mags := make([]float64, len(res)/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(res[i])
	}
	return mags
}

// BinFreq converts a Spectrum bin index back to a frequency, given the
// window length the spectrum was taken over.
func BinFreq(bin, window int, rate units.SampleRate) float64 {
	return float64(bin) * rate.Float() / float64(window)
}

// Dominant returns the spectrum's loudest bin above DC.
func Dominant(mags []float64) int {
	best := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	return best
}
