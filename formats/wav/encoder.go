// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsynth/buffer"
	"github.com/ik5/audsynth/utils"
)

// Encode writes buf as a 16-bit PCM WAV file at the buffer's authored rate.
// Mono buffers write one channel, stereo buffers two.
func Encode(ws io.WriteSeeker, buf *buffer.Buffer) error {
	frames := buf.Frames()
	if len(frames) == 0 {
		return ErrEmptyBuffer
	}

	channels := buf.Channels()
	rate := int(buf.Rate())

	data := make([]int, 0, len(frames)*channels)
	for _, f := range frames {
		data = append(data, int(utils.FloatToInt16(f[0])))
		if channels == 2 {
			data = append(data, int(utils.FloatToInt16(f[1])))
		}
	}

	enc := gowav.NewEncoder(ws, rate, 16, channels, 1)
	intBuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
