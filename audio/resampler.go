// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audsynth/utils"
)

// Resampler streams from src at a target sample rate using cubic
// interpolation over a four-frame window. Works on interleaved samples and
// preserves the channel count.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// Sliding window of four source frames: win[1] is the frame at the
	// integer part of the read position, win[0] the one before it.
	win    [4][]float32
	loaded int // source frames shifted into the window so far

	pos float64 // fractional read position in source frames

	eof       bool
	srcFrames int // real frame count, known once eof is set
}

func NewResampler(src Source, dstRate int) *Resampler {
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: src.Channels(),
	}
	for i := range r.win {
		r.win[i] = make([]float32, r.channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// shift rotates the window and loads one source frame into the last slot.
// Past the end of the source the slot is zero-filled, which fades the
// interpolation out cleanly.
func (r *Resampler) shift() error {
	last := r.win[0]
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], last

	for c := range last {
		last[c] = 0
	}
	if r.eof {
		r.loaded++
		return nil
	}

	filled := 0
	for filled < r.channels {
		n, err := r.src.ReadSamples(last[filled:])
		filled += n
		if err == io.EOF || (n == 0 && err == nil) {
			r.eof = true
			r.srcFrames = r.loaded
			if filled > 0 {
				// A torn final frame still counts.
				r.srcFrames++
			}
			break
		}
		if err != nil {
			return fmt.Errorf("reading resampler source: %w", err)
		}
	}
	r.loaded++
	return nil
}

// ReadSamples produces resampled interleaved samples. Only whole frames are
// written; dst should hold at least Channels values.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / r.channels
	written := 0

	for f := 0; f < frames; f++ {
		idx := int(r.pos)

		// Window alignment: win[1] must hold source frame idx.
		for r.loaded < idx+3 {
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}
		if r.eof && idx >= r.srcFrames {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		t := float32(r.pos - float64(idx))
		for c := 0; c < r.channels; c++ {
			dst[f*r.channels+c] = utils.CubicInterpolate32(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], t)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
