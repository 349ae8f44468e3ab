// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audsynth/effects"
	"github.com/ik5/audsynth/internal/sigtest"
	"github.com/ik5/audsynth/signal"
)

func TestInfClip(t *testing.T) {
	t.Parallel()

	shape := effects.InfClip()
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.3, 1},
		{1, 1},
		{-0.2, -1},
		{-1, -1},
	}
	for _, c := range cases {
		if got := shape(c.in); got != c.want {
			t.Errorf("InfClip(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClip(t *testing.T) {
	t.Parallel()

	t.Run("clamps and renormalizes", func(t *testing.T) {
		t.Parallel()

		shape, err := effects.Clip(0.5)
		if err != nil {
			t.Fatalf("Clip: %v", err)
		}
		cases := []struct{ in, want float64 }{
			{0, 0},
			{0.25, 0.5},
			{0.6, 1},
			{-0.6, -1},
			{-0.25, -0.5},
		}
		for _, c := range cases {
			if got := shape(c.in); got != c.want {
				t.Errorf("Clip(0.5)(%v) = %v, want %v", c.in, got, c.want)
			}
		}
	})

	t.Run("rejects non-positive threshold", func(t *testing.T) {
		t.Parallel()

		if _, err := effects.Clip(0); !errors.Is(err, effects.ErrBadThreshold) {
			t.Errorf("err = %v, want ErrBadThreshold", err)
		}
	})
}

func TestAtan(t *testing.T) {
	t.Parallel()

	shape := effects.Atan(1)
	if got := shape(0); got != 0 {
		t.Errorf("Atan(1)(0) = %v, want 0", got)
	}
	if got, want := shape(1), 0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("Atan(1)(1) = %v, want %v", got, want)
	}
	if got := shape(0.7) + shape(-0.7); got != 0 {
		t.Errorf("shape is not odd: f(x)+f(-x) = %v", got)
	}

	// Driving harder pushes the same input closer to full scale.
	hard := effects.Atan(10)
	if hard(0.5) <= shape(0.5) {
		t.Errorf("Atan(10)(0.5) = %v, not above Atan(1)(0.5) = %v", hard(0.5), shape(0.5))
	}
}

func TestDistortionShapesPerChannel(t *testing.T) {
	t.Parallel()

	shape, err := effects.Clip(0.5)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}
	d := effects.NewDistortion(&sigtest.Const{V: 0.25}, shape)
	if got := d.Get(); got != signal.Mono(0.5) {
		t.Errorf("Get() = %v, want %v", got, signal.Mono(0.5))
	}
	if a, b := d.Get(), d.Get(); a != b {
		t.Errorf("Get() not idempotent: %v then %v", a, b)
	}
}

func TestDistortionAdvancesChild(t *testing.T) {
	t.Parallel()

	d := effects.NewDistortion(&sigtest.Counter{}, effects.InfClip())
	got := signal.Render(3, d)
	want := []float64{0, 1, 1}
	for i, w := range want {
		if got[i] != signal.Mono(w) {
			t.Errorf("sample %d = %v, want %v", i, got[i], signal.Mono(w))
		}
	}
}

func TestDistortionVoiceForwarding(t *testing.T) {
	t.Parallel()

	v := &sigtest.FiniteVoice{V: 2, Tail: 1}
	d := effects.NewDistortion(v, effects.InfClip())

	var _ signal.Voice = d
	if got := d.Get(); got != signal.Mono(1) {
		t.Errorf("Get() = %v, want clipped full scale", got)
	}
	d.Stop()
	d.Advance()
	if !d.Done() {
		t.Error("not done after the child's tail")
	}
}
