// SPDX-License-Identifier: EPL-2.0

package filter

import "github.com/ik5/audsynth/signal"

// Filter applies biquad coefficients to a child signal, keeping a
// two-sample input/output history per channel.
type Filter struct {
	sgn  signal.Signal
	coef Coefficients

	x1, x2 signal.Frame // previous two inputs
	y1, y2 signal.Frame // previous two outputs
}

// New wraps sgn with the given coefficients.
func New(sgn signal.Signal, coef Coefficients) *Filter {
	return &Filter{sgn: sgn, coef: coef}
}

// Coefficients returns the active coefficient set.
func (f *Filter) Coefficients() Coefficients { return f.coef }

// SetCoefficients swaps coefficient sets without touching history. The
// resulting transient is intentional; sweep slowly or crossfade outside the
// filter if it must be inaudible.
func (f *Filter) SetCoefficients(coef Coefficients) {
	f.coef = coef
}

// eval runs the transfer function on one input frame.
func (f *Filter) eval(x signal.Frame) signal.Frame {
	var y signal.Frame
	for c := 0; c < 2; c++ {
		y[c] = f.coef.B0*x[c] + f.coef.B1*f.x1[c] + f.coef.B2*f.x2[c] -
			f.coef.A1*f.y1[c] - f.coef.A2*f.y2[c]
	}
	return y
}

func (f *Filter) Get() signal.Frame {
	return f.eval(f.sgn.Get())
}

// Advance folds the current sample into the history exactly once, then
// moves the child forward. Coefficient swaps between reads never double-
// count a sample.
func (f *Filter) Advance() {
	x := f.sgn.Get()
	y := f.eval(x)
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	f.sgn.Advance()
}

// Retrigger resets the child and clears the filter history.
func (f *Filter) Retrigger() {
	f.sgn.Retrigger()
	f.x1, f.x2 = signal.Frame{}, signal.Frame{}
	f.y1, f.y2 = signal.Frame{}, signal.Frame{}
}

// Stop forwards to the child if it supports stopping.
func (f *Filter) Stop() {
	if st, ok := f.sgn.(signal.Stopper); ok {
		st.Stop()
	}
}

// Done forwards the child's completion report. The ring-out of the filter
// itself is below audibility within a couple of samples for any stable
// design, so no extra tail is added.
func (f *Filter) Done() bool {
	if d, ok := f.sgn.(signal.Doner); ok {
		return d.Done()
	}
	return false
}
