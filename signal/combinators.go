// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/ik5/audsynth/units"
)

// Mix sums any number of child signals. Advance and Retrigger are forwarded
// to the children in slice order.
type Mix struct {
	sgns []Signal
}

// NewMix builds a mixer over the given children. The mixer owns them.
func NewMix(sgns ...Signal) *Mix {
	return &Mix{sgns: sgns}
}

func (m *Mix) Get() Frame {
	var sum Frame
	for _, s := range m.sgns {
		sum = sum.Add(s.Get())
	}
	return sum
}

func (m *Mix) Advance() {
	for _, s := range m.sgns {
		s.Advance()
	}
}

func (m *Mix) Retrigger() {
	for _, s := range m.sgns {
		s.Retrigger()
	}
}

// Stop forwards to every child that supports it.
func (m *Mix) Stop() {
	for _, s := range m.sgns {
		if st, ok := s.(Stopper); ok {
			st.Stop()
		}
	}
}

// Done reports true once every child reports completion. A child without a
// completion report keeps the mix alive forever.
func (m *Mix) Done() bool {
	for _, s := range m.sgns {
		d, ok := s.(Doner)
		if !ok || !d.Done() {
			return false
		}
	}
	return true
}

// StereoPair plays one mono signal on each channel: left first, then right,
// in forwarding order too.
type StereoPair struct {
	left, right Signal
}

// NewStereoPair combines two mono signals into a stereo one.
func NewStereoPair(left, right Signal) *StereoPair {
	return &StereoPair{left: left, right: right}
}

func (p *StereoPair) Get() Frame {
	return Frame{p.left.Get()[0], p.right.Get()[0]}
}

func (p *StereoPair) Advance() {
	p.left.Advance()
	p.right.Advance()
}

func (p *StereoPair) Retrigger() {
	p.left.Retrigger()
	p.right.Retrigger()
}

// Gain scales a child signal by a fixed volume.
type Gain struct {
	sgn Signal
	vol units.Vol
}

// NewGain wraps sgn with the given volume.
func NewGain(sgn Signal, vol units.Vol) *Gain {
	return &Gain{sgn: sgn, vol: vol}
}

// SetVol swaps the gain factor; takes effect on the current sample.
func (g *Gain) SetVol(vol units.Vol) { g.vol = vol }

func (g *Gain) Get() Frame { return g.sgn.Get().Scale(g.vol.Gain) }
func (g *Gain) Advance()   { g.sgn.Advance() }
func (g *Gain) Retrigger() { g.sgn.Retrigger() }

// Stop forwards to the child if it supports stopping.
func (g *Gain) Stop() {
	if st, ok := g.sgn.(Stopper); ok {
		st.Stop()
	}
}

// Done forwards to the child; a child without a completion report never
// finishes.
func (g *Gain) Done() bool {
	if d, ok := g.sgn.(Doner); ok {
		return d.Done()
	}
	return false
}

// Pan places a mono signal in the stereo field with constant-power panning.
// 0 is hard left, 0.5 center, 1 hard right.
type Pan struct {
	sgn  Signal
	l, r float64
}

// NewPan wraps a mono signal with a pan position in [0, 1].
func NewPan(sgn Signal, pos float64) *Pan {
	p := &Pan{sgn: sgn}
	p.SetPos(pos)
	return p
}

// SetPos moves the pan position, clamped to [0, 1].
func (p *Pan) SetPos(pos float64) {
	pos = math.Min(1, math.Max(0, pos))
	theta := pos * math.Pi / 2
	p.l = math.Cos(theta)
	p.r = math.Sin(theta)
}

func (p *Pan) Get() Frame {
	v := p.sgn.Get()[0]
	return Frame{v * p.l, v * p.r}
}

func (p *Pan) Advance()   { p.sgn.Advance() }
func (p *Pan) Retrigger() { p.sgn.Retrigger() }

// Ref is a non-owning, read-only view of a node owned elsewhere. Get
// forwards; Advance and Retrigger are no-ops, so only the owner moves the
// node forward. Use it when one generator must feed two independent chains.
// The owner must outlive every Ref to it.
type Ref struct {
	sgn Signal
}

// NewRef builds a read-only view of sgn.
func NewRef(sgn Signal) Ref {
	return Ref{sgn: sgn}
}

func (r Ref) Get() Frame { return r.sgn.Get() }
func (r Ref) Advance()   {}
func (r Ref) Retrigger() {}
