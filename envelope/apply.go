// SPDX-License-Identifier: EPL-2.0

package envelope

import "github.com/ik5/audsynth/signal"

// Apply shapes a child signal's amplitude with an envelope, producing a
// releasable voice: Stop releases the envelope and Done reports the end of
// its tail. The child keeps running during the release so the tail sounds
// natural.
type Apply struct {
	sgn signal.Signal
	env *ADSR
}

// NewApply wraps sgn with env. The wrapper owns both.
func NewApply(sgn signal.Signal, env *ADSR) *Apply {
	return &Apply{sgn: sgn, env: env}
}

// Env exposes the envelope, e.g. to inspect its phase.
func (a *Apply) Env() *ADSR { return a.env }

func (a *Apply) Get() signal.Frame {
	return a.sgn.Get().Scale(a.env.Level())
}

// Advance moves the child first, then the envelope.
func (a *Apply) Advance() {
	a.sgn.Advance()
	a.env.Advance()
}

// Retrigger resets the child first, then the envelope.
func (a *Apply) Retrigger() {
	a.sgn.Retrigger()
	a.env.Retrigger()
}

// Stop begins the envelope's release tail.
func (a *Apply) Stop() { a.env.Stop() }

// Done reports true once the release tail has decayed to silence.
func (a *Apply) Done() bool { return a.env.Done() }
