// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audsynth/buffer"
	"github.com/ik5/audsynth/formats/wav"
	"github.com/ik5/audsynth/gen"
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("stereo", func(t *testing.T) {
		t.Parallel()

		src, err := buffer.Synth(441, gen.NewSine(units.NewFreq(441, units.CD)), units.CD)
		if err != nil {
			t.Fatalf("Synth: %v", err)
		}

		got := roundTrip(t, src)
		if got.Channels() != 2 {
			t.Fatalf("Channels() = %d, want 2", got.Channels())
		}
		if got.Rate() != units.CD {
			t.Fatalf("Rate() = %v, want CD", got.Rate())
		}
		if got.Len() != src.Len() {
			t.Fatalf("Len() = %d, want %d", got.Len(), src.Len())
		}

		// Truncation plus the 32767/32768 scale bound the error at two
		// quantization steps.
		const step = 2.0 / 32768
		for i := range src.Frames() {
			a, b := src.Frames()[i], got.Frames()[i]
			if math.Abs(a[0]-b[0]) > step || math.Abs(a[1]-b[1]) > step {
				t.Fatalf("frame %d = %v, want %v within two steps", i, b, a)
			}
		}
	})

	t.Run("mono", func(t *testing.T) {
		t.Parallel()

		frames := make([]signal.Frame, 100)
		for i := range frames {
			frames[i] = signal.Mono(float64(i) / 100)
		}
		src, err := buffer.New(frames, units.Telephone, 1)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		got := roundTrip(t, src)
		if got.Channels() != 1 {
			t.Fatalf("Channels() = %d, want 1", got.Channels())
		}
		if got.Rate() != units.Telephone {
			t.Fatalf("Rate() = %v, want Telephone", got.Rate())
		}

		const step = 2.0 / 32768
		for i := range frames {
			f := got.Frames()[i]
			if f[0] != f[1] {
				t.Fatalf("frame %d unbalanced after mono round trip: %v", i, f)
			}
			if math.Abs(f[0]-frames[i][0]) > step {
				t.Fatalf("frame %d = %v, want %v within two steps", i, f[0], frames[i][0])
			}
		}
	})
}

// roundTrip encodes buf to a file and decodes it back.
func roundTrip(t *testing.T, buf *buffer.Buffer) *buffer.Buffer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	if err := wav.Encode(f, buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening file: %v", err)
	}
	defer in.Close()

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out, err := buffer.FromSource(src)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	return out
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("definitely not riff data")))
	if !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("err = %v, want ErrNotWavFile", err)
	}
}
