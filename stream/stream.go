// SPDX-License-Identifier: EPL-2.0

// Package stream bridges a signal graph to the gopxl/beep ecosystem, so a
// host can hand a graph to beep's speaker for live playback or to beep's
// encoders. The engine itself stays offline and pull-based; this is the
// one adapter between the two worlds.
package stream

import (
	"github.com/gopxl/beep"

	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// Streamer pulls frames from a graph root on demand. It drains (reports
// no more samples) once the root says it is done; a root without a
// completion report streams forever.
type Streamer struct {
	root    signal.Signal
	drained bool
}

// New wraps the graph root. The streamer owns the root's clock: do not
// advance the graph elsewhere while streaming.
func New(root signal.Signal) *Streamer {
	return &Streamer{root: root}
}

// Stream implements beep.Streamer.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.drained {
		return 0, false
	}

	for i := range samples {
		if d, ok := s.root.(signal.Doner); ok && d.Done() {
			s.drained = true
			return i, i > 0
		}
		samples[i] = s.root.Get()
		s.root.Advance()
	}

	return len(samples), true
}

// Err implements beep.Streamer; the graph cannot fail mid-pull.
func (s *Streamer) Err() error { return nil }

// Format describes the streamer's output to beep.
func Format(rate units.SampleRate) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
}
