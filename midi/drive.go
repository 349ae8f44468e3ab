// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"github.com/ik5/audsynth/control"
	"github.com/ik5/audsynth/poly"
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

// Drive schedules every event of src against a voice manager: note-on adds
// a voice built by newVoice, note-off begins that voice's release. The
// returned sequence is the playable root; it reports Done once every event
// has fired (release tails may still be sounding; wait for mgr.Done too
// when rendering to the true end).
func Drive(src Source, mgr *poly.Manager[NoteKey], newVoice func(Event) signal.Voice) (*control.Seq[*poly.Manager[NoteKey]], error) {
	var evs []Event
	for {
		ev, ok := src.Next()
		if !ok {
			break
		}
		evs = append(evs, ev)
	}
	if len(evs) == 0 {
		return nil, ErrNoEvents
	}

	// The scheduler wants deltas between consecutive events.
	times := make([]units.Time, len(evs))
	last := 0.0
	for i, ev := range evs {
		times[i] = units.Samples(ev.Time.Frames - last)
		last = ev.Time.Frames
	}

	next := 0
	fn := func(m *poly.Manager[NoteKey]) {
		ev := evs[next]
		next++

		if ev.On {
			m.Add(ev.NoteKey(), newVoice(ev))
			return
		}
		m.Release(ev.NoteKey())
	}

	return control.NewSeq(times, mgr, fn)
}
