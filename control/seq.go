// SPDX-License-Identifier: EPL-2.0

package control

import (
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// Seq mutates a target signal at scheduled times, firing each interval once.
// Intervals are deltas: the first event fires times[0] samples in, the
// second times[1] samples after that, and so on. After the last event the
// target keeps ticking but the sequence reports Done.
type Seq[S signal.Signal] struct {
	times []units.Time
	sgn   S
	fn    func(S)

	since float64 // samples since the last fire
	index int     // next interval to fire
}

// NewSeq builds a sequence over sgn. fn is invoked once per elapsed
// interval, always from inside Advance, never from Get.
func NewSeq[S signal.Signal](times []units.Time, sgn S, fn func(S)) (*Seq[S], error) {
	if len(times) == 0 {
		return nil, ErrEmptySequence
	}
	for _, t := range times {
		if t.Frames < 0 {
			return nil, ErrNegativeTime
		}
	}

	return &Seq[S]{times: times, sgn: sgn, fn: fn}, nil
}

// Target returns the wrapped signal.
func (s *Seq[S]) Target() S { return s.sgn }

// Index is the position of the next interval to fire.
func (s *Seq[S]) Index() int { return s.index }

// Len is the number of scheduled events.
func (s *Seq[S]) Len() int { return len(s.times) }

// Skip fires the next event immediately, reporting whether one was left.
// Useful right after construction so the first event applies at sample zero.
func (s *Seq[S]) Skip() bool {
	if s.index >= len(s.times) {
		return false
	}
	s.since = 0
	s.fn(s.sgn)
	s.index++
	return true
}

// fire consumes the current interval if it has elapsed.
func (s *Seq[S]) fire() bool {
	if s.index >= len(s.times) {
		return false
	}
	t := s.times[s.index].Frames
	if s.since < t {
		return false
	}
	s.since -= t
	s.fn(s.sgn)
	s.index++
	return true
}

func (s *Seq[S]) Get() signal.Frame {
	return s.sgn.Get()
}

// Advance moves the target one sample, then drains every event that has
// come due. Consecutive zero-length intervals all fire within this sample.
func (s *Seq[S]) Advance() {
	s.sgn.Advance()
	s.since++
	for s.fire() {
	}
}

// Retrigger rewinds the schedule to the first event and resets the target.
func (s *Seq[S]) Retrigger() {
	s.sgn.Retrigger()
	s.index = 0
	s.since = 0
}

// Done reports whether every event has fired.
func (s *Seq[S]) Done() bool {
	return s.index >= len(s.times)
}

// Loop mutates a target signal at scheduled times, wrapping back to the
// first interval after the last one, forever.
type Loop[S signal.Signal] struct {
	seq Seq[S]
}

// NewLoop builds a looping schedule over sgn; same contract as NewSeq,
// except that at least one interval must be positive: an all-zero loop
// could never stop firing within a single sample.
func NewLoop[S signal.Signal](times []units.Time, sgn S, fn func(S)) (*Loop[S], error) {
	seq, err := NewSeq(times, sgn, fn)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, t := range times {
		total += t.Frames
	}
	if total <= 0 {
		return nil, ErrNonPositiveTime
	}

	return &Loop[S]{seq: *seq}, nil
}

// Target returns the wrapped signal.
func (l *Loop[S]) Target() S { return l.seq.sgn }

// Index is the position of the next interval to fire.
func (l *Loop[S]) Index() int { return l.seq.index }

// Skip fires the next event immediately and advances the loop position.
func (l *Loop[S]) Skip() {
	l.seq.Skip()
	l.wrap()
}

func (l *Loop[S]) wrap() {
	if l.seq.index >= len(l.seq.times) {
		l.seq.index = 0
	}
}

func (l *Loop[S]) Get() signal.Frame {
	return l.seq.Get()
}

func (l *Loop[S]) Advance() {
	l.seq.sgn.Advance()
	l.seq.since++
	for l.seq.fire() {
		l.wrap()
	}
}

func (l *Loop[S]) Retrigger() {
	l.seq.Retrigger()
}
