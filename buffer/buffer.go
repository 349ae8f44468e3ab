// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// Buffer is an immutable sequence of frames plus the sample rate it was
// authored at. Several readers may share one buffer at the same time.
type Buffer struct {
	frames   []signal.Frame
	rate     units.SampleRate
	channels int
}

// New wraps frames authored at rate. channels records whether the material
// is mono (stored duplicated across both slots) or stereo.
func New(frames []signal.Frame, rate units.SampleRate, channels int) (*Buffer, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyBuffer
	}
	if channels < 1 || channels > 2 {
		return nil, ErrBadChannels
	}
	return &Buffer{frames: frames, rate: rate, channels: channels}, nil
}

// Synth renders n frames from a signal into a fresh buffer, a convenient
// way to bake an expensive graph into reusable sample data.
func Synth(n int, root signal.Signal, rate units.SampleRate) (*Buffer, error) {
	if n <= 0 {
		return nil, ErrEmptyBuffer
	}
	return &Buffer{frames: signal.Render(n, root), rate: rate, channels: 2}, nil
}

// FromSource collects a decoded audio source into a buffer at the source's
// authored rate. Mono material is duplicated across both channels; sources
// with more than two channels are averaged down to mono first.
func FromSource(src audio.Source) (*Buffer, error) {
	channels := src.Channels()
	if channels > 2 {
		src = audio.NewMonoMixer(src)
		channels = 1
	}

	raw, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("collecting source: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyBuffer
	}

	var frames []signal.Frame
	if channels == 1 {
		frames = make([]signal.Frame, len(raw))
		for i, v := range raw {
			frames[i] = signal.Mono(float64(v))
		}
	} else {
		frames = make([]signal.Frame, len(raw)/2)
		for i := range frames {
			frames[i] = signal.Frame{float64(raw[2*i]), float64(raw[2*i+1])}
		}
	}

	return &Buffer{frames: frames, rate: units.SampleRate(src.SampleRate()), channels: channels}, nil
}

// FromSourceResampled converts the source to rate before collecting it, so
// the buffer plays at pitch inside a graph bound to that rate.
func FromSourceResampled(src audio.Source, rate units.SampleRate) (*Buffer, error) {
	return FromSource(audio.NewResampler(src, int(rate)))
}

// Len is the number of frames.
func (b *Buffer) Len() int { return len(b.frames) }

// Rate is the sample rate the material was authored at.
func (b *Buffer) Rate() units.SampleRate { return b.rate }

// Channels is 1 for mono material, 2 for stereo.
func (b *Buffer) Channels() int { return b.channels }

// Duration of the buffer at its authored rate.
func (b *Buffer) Duration() units.Time {
	return units.Samples(float64(len(b.frames)))
}

// Frames exposes the underlying slice. Treat it as read-only while any
// reader is attached.
func (b *Buffer) Frames() []signal.Frame { return b.frames }

// at reads frame i under an exhaustion policy: out-of-range reads yield
// silence for Once and wrap for Loop.
func (b *Buffer) at(i int, mode Exhaust) signal.Frame {
	n := len(b.frames)
	switch {
	case mode == Loop:
		i %= n
		if i < 0 {
			i += n
		}
	case i < 0 || i >= n:
		return signal.Frame{}
	}
	return b.frames[i]
}
