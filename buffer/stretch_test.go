// SPDX-License-Identifier: EPL-2.0

package buffer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audsynth/buffer"
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

func TestStretchUnitRateIsIdentity(t *testing.T) {
	t.Parallel()

	buf, err := buffer.New(ramp(8), units.CD, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, interp := range []buffer.Interpolation{
		buffer.Nearest, buffer.Linear, buffer.Cubic, buffer.Hermite,
	} {
		s, err := buffer.NewStretch(buf, 1, buffer.Loop, interp)
		if err != nil {
			t.Fatalf("NewStretch: %v", err)
		}

		// At integral positions every kernel passes through the
		// sample values themselves.
		got := signal.Render(16, s)
		for i, f := range got {
			want := buf.Frames()[i%8]
			if math.Abs(f[0]-want[0]) > 1e-12 {
				t.Errorf("interp %d, frame %d = %v, want %v", interp, i, f, want)
			}
		}
	}
}

func TestStretchHalfRateLinear(t *testing.T) {
	t.Parallel()

	buf, err := buffer.New(ramp(4), units.CD, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, err := buffer.NewStretch(buf, 0.5, buffer.Once, buffer.Linear)
	if err != nil {
		t.Fatalf("NewStretch: %v", err)
	}

	// A linear ramp interpolated linearly at half rate is exact: the
	// ramp values at positions 0, 0.5, 1, 1.5, ...
	got := signal.Render(6, s)
	for i, f := range got {
		want := float64(i) / 2
		if math.Abs(f[0]-want) > 1e-12 {
			t.Errorf("frame %d = %v, want %v", i, f[0], want)
		}
	}
}

func TestStretchDoubleRateEndsEarly(t *testing.T) {
	t.Parallel()

	buf, err := buffer.New(ramp(8), units.CD, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, err := buffer.NewStretch(buf, 2, buffer.Once, buffer.Nearest)
	if err != nil {
		t.Fatalf("NewStretch: %v", err)
	}

	for i := 0; i < 4; i++ {
		if s.Done() {
			t.Fatalf("done after %d of 4 samples", i)
		}
		s.Advance()
	}
	if !s.Done() {
		t.Error("not done after consuming the buffer at double rate")
	}
	if got := s.Get(); got != (signal.Frame{}) {
		t.Errorf("Get() past the end = %v, want silence", got)
	}
}

func TestStretchGetIsIdempotent(t *testing.T) {
	t.Parallel()

	buf, err := buffer.New(ramp(8), units.CD, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, err := buffer.NewStretch(buf, 1.3, buffer.Loop, buffer.Cubic)
	if err != nil {
		t.Fatalf("NewStretch: %v", err)
	}

	for i := 0; i < 20; i++ {
		first := s.Get()
		if got := s.Get(); got != first {
			t.Fatalf("sample %d: repeated Get() = %v, want %v", i, got, first)
		}
		s.Advance()
	}
}

func TestStretchSetRate(t *testing.T) {
	t.Parallel()

	buf, err := buffer.New(ramp(16), units.CD, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, err := buffer.NewStretch(buf, 1, buffer.Loop, buffer.Linear)
	if err != nil {
		t.Fatalf("NewStretch: %v", err)
	}

	s.Advance()
	s.SetRate(0.25)
	s.Advance()
	if got := s.Pos(); math.Abs(got-1.25) > 1e-12 {
		t.Errorf("Pos() = %v, want 1.25", got)
	}

	s.SetRate(0) // ignored
	s.Advance()
	if got := s.Pos(); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("Pos() after ignored SetRate(0) = %v, want 1.5", got)
	}
}

func TestStretchLoopWraps(t *testing.T) {
	t.Parallel()

	buf, err := buffer.New(ramp(4), units.CD, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s, err := buffer.NewStretch(buf, 1.5, buffer.Loop, buffer.Nearest)
	if err != nil {
		t.Fatalf("NewStretch: %v", err)
	}

	for i := 0; i < 100; i++ {
		s.Advance()
		if p := s.Pos(); p < 0 || p >= 4 {
			t.Fatalf("position %v escaped the loop after %d samples", p, i+1)
		}
	}
}

func TestStretchValidation(t *testing.T) {
	t.Parallel()

	buf, err := buffer.New(ramp(4), units.CD, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, rate := range []float64{0, -1} {
		if _, err := buffer.NewStretch(buf, rate, buffer.Once, buffer.Linear); !errors.Is(err, buffer.ErrNonPositiveRate) {
			t.Errorf("rate %v: err = %v, want ErrNonPositiveRate", rate, err)
		}
	}
}
