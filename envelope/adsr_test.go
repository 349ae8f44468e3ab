// SPDX-License-Identifier: EPL-2.0

package envelope_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audsynth/envelope"
	"github.com/ik5/audsynth/internal/sigtest"
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

func mustADSR(t *testing.T, attack, decay float64, sustain float64, release float64) *envelope.ADSR {
	t.Helper()

	env, err := envelope.NewADSR(
		units.Samples(attack), units.Samples(decay), sustain, units.Samples(release))
	if err != nil {
		t.Fatalf("NewADSR: %v", err)
	}
	return env
}

func advance(env *envelope.ADSR, n int) {
	for i := 0; i < n; i++ {
		env.Advance()
	}
}

func TestADSRShape(t *testing.T) {
	t.Parallel()

	env := mustADSR(t, 100, 200, 0.5, 300)

	if got := env.Level(); got != 0 {
		t.Fatalf("initial level = %v, want 0", got)
	}
	if got := env.Phase(); got != envelope.Attack {
		t.Fatalf("initial phase = %v, want attack", got)
	}

	advance(env, 50)
	if got := env.Level(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("level mid-attack = %v, want 0.5", got)
	}

	advance(env, 50)
	if got := env.Level(); got != 1 {
		t.Errorf("level at attack end = %v, want 1", got)
	}
	if got := env.Phase(); got != envelope.Decay {
		t.Errorf("phase at attack end = %v, want decay", got)
	}

	advance(env, 100)
	if got := env.Level(); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("level mid-decay = %v, want 0.75", got)
	}

	advance(env, 100)
	if got, want := env.Phase(), envelope.Sustain; got != want {
		t.Errorf("phase at decay end = %v, want %v", got, want)
	}

	advance(env, 1000)
	if got := env.Level(); got != 0.5 {
		t.Errorf("sustained level = %v, want 0.5", got)
	}

	env.Stop()
	if got := env.Level(); got != 0.5 {
		t.Errorf("level right after Stop = %v, want unchanged 0.5", got)
	}

	advance(env, 150)
	if got := env.Level(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("level mid-release = %v, want 0.25", got)
	}
	if env.Done() {
		t.Error("done mid-release")
	}

	advance(env, 150)
	if got := env.Level(); got != 0 {
		t.Errorf("level at release end = %v, want 0", got)
	}
	if !env.Done() {
		t.Error("not done after release elapsed")
	}
}

func TestADSRStopDuringAttack(t *testing.T) {
	t.Parallel()

	env := mustADSR(t, 100, 200, 0.5, 100)

	advance(env, 40)
	env.Stop()
	if got := env.Phase(); got != envelope.Release {
		t.Fatalf("phase after Stop = %v, want release", got)
	}

	// Release ramps down from the captured level, 0.4.
	advance(env, 50)
	if got := env.Level(); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("level mid-release = %v, want 0.2", got)
	}
}

func TestADSRStopIdempotent(t *testing.T) {
	t.Parallel()

	env := mustADSR(t, 0, 0, 1, 100)
	advance(env, 10)

	env.Stop()
	advance(env, 50)
	mid := env.Level()

	// A second Stop must not restart the tail from the lower level.
	env.Stop()
	env.Advance()
	if got := env.Level(); got >= mid {
		t.Errorf("level after repeated Stop = %v, want below %v", got, mid)
	}
	if math.Abs(env.Level()-mid*(1-51.0/100)/(1-50.0/100)) > 1e-9 {
		t.Errorf("repeated Stop changed the release ramp: level = %v", env.Level())
	}
}

func TestADSRZeroDurations(t *testing.T) {
	t.Parallel()

	t.Run("zero attack lands in decay on next sample", func(t *testing.T) {
		t.Parallel()

		// The sample that finishes a zero-length attack already counts
		// toward the decay ramp, so the level is one decay step below full.
		env := mustADSR(t, 0, 100, 0.5, 100)
		env.Advance()
		want := 1 - 0.5*(1.0/100)
		if got := env.Level(); math.Abs(got-want) > 1e-12 {
			t.Errorf("level after one sample = %v, want %v", got, want)
		}
		if got := env.Phase(); got != envelope.Decay {
			t.Errorf("phase after one sample = %v, want decay", got)
		}
	})

	t.Run("all zero collapses within one sample", func(t *testing.T) {
		t.Parallel()

		env := mustADSR(t, 0, 0, 0.5, 0)
		env.Stop()
		env.Advance()
		if !env.Done() {
			t.Error("not done after one sample")
		}
		if got := env.Level(); got != 0 {
			t.Errorf("level = %v, want 0", got)
		}
	})

	t.Run("zero release ends on next sample after stop", func(t *testing.T) {
		t.Parallel()

		env := mustADSR(t, 0, 0, 1, 0)
		advance(env, 5)
		env.Stop()
		if env.Done() {
			t.Fatal("done before the sample after Stop")
		}
		env.Advance()
		if !env.Done() {
			t.Error("not done one sample after Stop")
		}
	})
}

func TestADSRRetrigger(t *testing.T) {
	t.Parallel()

	env := mustADSR(t, 100, 0, 1, 100)
	advance(env, 150)
	env.Stop()
	advance(env, 50)

	env.Retrigger()
	if got := env.Phase(); got != envelope.Attack {
		t.Errorf("phase after retrigger = %v, want attack", got)
	}
	if got := env.Level(); got != 0 {
		t.Errorf("level after retrigger = %v, want 0", got)
	}
	if env.Done() {
		t.Error("done after retrigger")
	}
}

func TestADSRValidation(t *testing.T) {
	t.Parallel()

	_, err := envelope.NewADSR(units.Samples(-1), units.Zero(), 1, units.Zero())
	if !errors.Is(err, envelope.ErrNegativeDuration) {
		t.Errorf("negative attack: err = %v, want ErrNegativeDuration", err)
	}

	_, err = envelope.NewADSR(units.Zero(), units.Zero(), 1.5, units.Zero())
	if !errors.Is(err, envelope.ErrSustainRange) {
		t.Errorf("sustain 1.5: err = %v, want ErrSustainRange", err)
	}
}

func TestAR(t *testing.T) {
	t.Parallel()

	env, err := envelope.NewAR(units.Samples(10), units.Samples(10))
	if err != nil {
		t.Fatalf("NewAR: %v", err)
	}

	advance(env, 10)
	if got := env.Level(); got != 1 {
		t.Fatalf("level at attack end = %v, want 1", got)
	}

	advance(env, 1000)
	if got := env.Level(); got != 1 {
		t.Errorf("held level = %v, want 1", got)
	}

	env.Stop()
	advance(env, 10)
	if !env.Done() {
		t.Error("not done after release")
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("scales the child", func(t *testing.T) {
		t.Parallel()

		env := mustADSR(t, 100, 0, 1, 10)
		a := envelope.NewApply(&sigtest.Const{V: 0.8}, env)

		if got := a.Get(); got != signal.Mono(0) {
			t.Errorf("initial Get() = %v, want 0", got)
		}
		for i := 0; i < 50; i++ {
			a.Advance()
		}
		if got := a.Get(); math.Abs(got[0]-0.4) > 1e-12 {
			t.Errorf("Get() mid-attack = %v, want 0.4", got)
		}
	})

	t.Run("voice lifecycle", func(t *testing.T) {
		t.Parallel()

		env := mustADSR(t, 0, 0, 1, 5)
		a := envelope.NewApply(&sigtest.Counter{}, env)

		a.Stop()
		for i := 0; i < 5; i++ {
			if a.Done() {
				t.Fatalf("done after %d of 5 release samples", i)
			}
			a.Advance()
		}
		if !a.Done() {
			t.Error("not done after the release tail")
		}
	})

	t.Run("child keeps running through release", func(t *testing.T) {
		t.Parallel()

		cnt := &sigtest.Counter{}
		env := mustADSR(t, 0, 0, 1, 100)
		a := envelope.NewApply(cnt, env)

		a.Stop()
		for i := 0; i < 10; i++ {
			a.Advance()
		}
		if got := cnt.Get(); got != signal.Mono(10) {
			t.Errorf("child position = %v, want 10", got)
		}
	})
}
