// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package midi

import (
	"fmt"

	"github.com/rakyll/portmidi"

	"github.com/ik5/audsynth/units"
)

const (
	statusNoteOff = 0x80
	statusNoteOn  = 0x90
)

// PortMidi adapts a live portmidi input stream into a Source. Timestamps
// are converted from portmidi's millisecond clock into sample counts at the
// given rate. Being live, the stream is not restartable: Reset is a no-op.
type PortMidi struct {
	stream  *portmidi.Stream
	rate    units.SampleRate
	pending []portmidi.Event
}

// OpenPortMidi opens the input device id for reading. The caller must have
// called portmidi.Initialize.
func OpenPortMidi(id portmidi.DeviceID, rate units.SampleRate) (*PortMidi, error) {
	stream, err := portmidi.NewInputStream(id, 1024)
	if err != nil {
		return nil, fmt.Errorf("opening midi input: %w", err)
	}

	return &PortMidi{stream: stream, rate: rate}, nil
}

// Next returns the next note transition, skipping every other kind of
// message. It reports false when no event is pending right now, not only
// at end-of-stream; poll again later.
func (p *PortMidi) Next() (Event, bool) {
	for {
		if len(p.pending) == 0 {
			evs, err := p.stream.Read(1024)
			if err != nil || len(evs) == 0 {
				return Event{}, false
			}
			p.pending = evs
		}

		raw := p.pending[0]
		p.pending = p.pending[1:]

		status := raw.Status & 0xF0
		if status != statusNoteOn && status != statusNoteOff {
			continue
		}

		return Event{
			Time: units.Seconds(float64(raw.Timestamp)/1000, p.rate),
			// Note-on with zero velocity is the wire encoding of note-off.
			On:       status == statusNoteOn && raw.Data2 > 0,
			Channel:  uint8(raw.Status & 0x0F),
			Key:      uint8(raw.Data1),
			Velocity: uint8(raw.Data2),
		}, true
	}
}

// Reset is a no-op for a live stream.
func (p *PortMidi) Reset() {}

// Close releases the underlying device.
func (p *PortMidi) Close() error {
	if err := p.stream.Close(); err != nil {
		return fmt.Errorf("closing midi input: %w", err)
	}
	return nil
}
