// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// Delay plays a child signal back a fixed number of samples late, feeding
// the delayed output back into its ring buffer at the feedback volume. The
// node outputs only the wet signal; mix it with a signal.Ref of the child
// for a dry/wet blend.
type Delay struct {
	sgn      signal.Signal
	buf      []signal.Frame
	idx      int
	feedback units.Vol
	flip     bool
}

// NewDelay wraps sgn with a delay line. The delay time truncates to whole
// samples and must cover at least one.
func NewDelay(sgn signal.Signal, delay units.Time, feedback units.Vol) (*Delay, error) {
	n := delay.Count()
	if n < 1 {
		return nil, ErrShortDelay
	}

	return &Delay{
		sgn:      sgn,
		buf:      make([]signal.Frame, n),
		feedback: feedback,
	}, nil
}

// NewPingPong builds a delay whose feedback swaps the stereo channels on
// every pass, bouncing the echo between left and right.
func NewPingPong(sgn signal.Signal, delay units.Time, feedback units.Vol) (*Delay, error) {
	d, err := NewDelay(sgn, delay, feedback)
	if err != nil {
		return nil, err
	}
	d.flip = true
	return d, nil
}

// Feedback returns the current feedback volume.
func (d *Delay) Feedback() units.Vol { return d.feedback }

// SetFeedback swaps the feedback volume; takes effect on the next write.
func (d *Delay) SetFeedback(vol units.Vol) { d.feedback = vol }

func (d *Delay) Get() signal.Frame {
	return d.buf[d.idx]
}

func (d *Delay) Advance() {
	wet := d.buf[d.idx]
	if d.flip {
		wet = signal.Frame{wet[1], wet[0]}
	}
	d.buf[d.idx] = d.sgn.Get().Add(wet.Scale(d.feedback.Gain))
	d.idx = (d.idx + 1) % len(d.buf)
	d.sgn.Advance()
}

// Retrigger resets the child and silences the delay line.
func (d *Delay) Retrigger() {
	d.sgn.Retrigger()
	clear(d.buf)
	d.idx = 0
}

// Stop forwards to the child if it supports stopping. The echoes already
// in the line keep playing out.
func (d *Delay) Stop() {
	if st, ok := d.sgn.(signal.Stopper); ok {
		st.Stop()
	}
}

// Done forwards to the child; a child without a completion report never
// finishes.
func (d *Delay) Done() bool {
	if dn, ok := d.sgn.(signal.Doner); ok {
		return dn.Done()
	}
	return false
}
