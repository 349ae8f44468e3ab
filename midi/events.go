// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"errors"
	"sort"

	"github.com/ik5/audsynth/units"
)

var ErrNoEvents = errors.New("event list must not be empty")

// Event is one note transition.
type Event struct {
	// Time is the absolute position of the event from the start of the
	// piece.
	Time units.Time
	// On distinguishes note-on from note-off.
	On bool

	Channel  uint8
	Key      uint8
	Velocity uint8
}

// NoteKey identifies a sounding note within a voice manager.
type NoteKey struct {
	Channel uint8
	Key     uint8
}

// Key returns the voice-manager key for the event's note.
func (e Event) NoteKey() NoteKey {
	return NoteKey{Channel: e.Channel, Key: e.Key}
}

// Source is a lazy, ordered stream of events. Next returns false once the
// stream is exhausted; Reset rewinds it where the backing medium allows.
type Source interface {
	Next() (Event, bool)
	Reset()
}

// Events is an in-memory, restartable Source.
type Events struct {
	evs []Event
	pos int
}

// NewEvents builds a source over evs, sorted by time (stable, so
// same-instant events keep their relative order).
func NewEvents(evs []Event) (*Events, error) {
	if len(evs) == 0 {
		return nil, ErrNoEvents
	}

	sorted := make([]Event, len(evs))
	copy(sorted, evs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Frames < sorted[j].Time.Frames
	})

	return &Events{evs: sorted}, nil
}

func (e *Events) Next() (Event, bool) {
	if e.pos >= len(e.evs) {
		return Event{}, false
	}
	ev := e.evs[e.pos]
	e.pos++
	return ev, true
}

func (e *Events) Reset() {
	e.pos = 0
}
