// SPDX-License-Identifier: EPL-2.0

package gen

import (
	"math/rand"

	"github.com/ik5/audsynth/signal"
)

// Noise produces uniform white noise in [-1, 1). The current value is drawn
// in Advance and held, keeping Get idempotent within a sample.
type Noise struct {
	rng  *rand.Rand
	seed int64
	cur  float64
}

// NewNoise builds a noise generator. The same seed reproduces the same
// stream, which keeps renders deterministic.
func NewNoise(seed int64) *Noise {
	n := &Noise{rng: rand.New(rand.NewSource(seed)), seed: seed}
	n.cur = n.draw()
	return n
}

func (n *Noise) draw() float64 {
	return 2*n.rng.Float64() - 1
}

func (n *Noise) Get() signal.Frame {
	return signal.Mono(n.cur)
}

func (n *Noise) Advance() {
	n.cur = n.draw()
}

// Retrigger restarts the stream from the configured seed.
func (n *Noise) Retrigger() {
	n.rng = rand.New(rand.NewSource(n.seed))
	n.cur = n.draw()
}
