// SPDX-License-Identifier: EPL-2.0

package audsynth

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/buffer"
	"github.com/ik5/audsynth/formats/aiff"
	"github.com/ik5/audsynth/formats/mp3"
	"github.com/ik5/audsynth/formats/vorbis"
	"github.com/ik5/audsynth/formats/wav"
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// ErrUnknownFormat reports a file extension no registered decoder claims.
var ErrUnknownFormat = errors.New("no decoder registered for format")

// registry holds the built-in format decoders, keyed by file extension.
var registry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}()

// Render pulls dur worth of frames from root: one Get then one Advance per
// sample.
func Render(dur units.Time, root signal.Signal) []signal.Frame {
	return signal.Render(dur.Count(), root)
}

// RenderWAV renders dur worth of audio from root and writes it to ws as a
// 16-bit stereo PCM WAV at the given rate.
func RenderWAV(ws io.WriteSeeker, dur units.Time, rate units.SampleRate, root signal.Signal) error {
	buf, err := buffer.Synth(dur.Count(), root, rate)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if err := wav.Encode(ws, buf); err != nil {
		return fmt.Errorf("encoding render: %w", err)
	}
	return nil
}

// open picks a decoder by file extension and returns the decoded source.
// The file must stay open until the source has been collected.
func open(path string) (*os.File, audio.Source, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := registry.Get(ext)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return f, src, nil
}

// Decode opens an audio file and collects it into a buffer at its authored
// rate, picking the decoder from the file extension.
func Decode(path string) (*buffer.Buffer, error) {
	f, src, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return buffer.FromSource(src)
}

// DecodeAt decodes like Decode but resamples the material to rate, so it
// plays at pitch inside a graph bound to that rate.
func DecodeAt(path string, rate units.SampleRate) (*buffer.Buffer, error) {
	f, src, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if units.SampleRate(src.SampleRate()) == rate {
		return buffer.FromSource(src)
	}
	return buffer.FromSourceResampled(src, rate)
}
