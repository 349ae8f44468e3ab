// SPDX-License-Identifier: EPL-2.0

package midi_test

import (
	"errors"
	"testing"

	"github.com/ik5/audsynth/internal/sigtest"
	"github.com/ik5/audsynth/midi"
	"github.com/ik5/audsynth/poly"
	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/units"
)

func TestEventsSortByTime(t *testing.T) {
	t.Parallel()

	evs, err := midi.NewEvents([]midi.Event{
		{Time: units.Samples(30), On: false, Key: 60},
		{Time: units.Samples(10), On: true, Key: 60},
		{Time: units.Samples(20), On: true, Key: 64},
	})
	if err != nil {
		t.Fatalf("NewEvents: %v", err)
	}

	var got []float64
	for {
		ev, ok := evs.Next()
		if !ok {
			break
		}
		got = append(got, ev.Time.Frames)
	}

	want := []float64{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("times = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d at %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEventsStableAtSameInstant(t *testing.T) {
	t.Parallel()

	// Off-then-on at the same instant must keep that order, or a retrigger
	// of the same key would cancel itself.
	evs, err := midi.NewEvents([]midi.Event{
		{Time: units.Samples(10), On: false, Key: 60},
		{Time: units.Samples(10), On: true, Key: 60},
	})
	if err != nil {
		t.Fatalf("NewEvents: %v", err)
	}

	first, _ := evs.Next()
	second, _ := evs.Next()
	if first.On || !second.On {
		t.Errorf("order = %v, %v, want off then on", first.On, second.On)
	}
}

func TestEventsReset(t *testing.T) {
	t.Parallel()

	evs, err := midi.NewEvents([]midi.Event{{Time: units.Samples(1), On: true}})
	if err != nil {
		t.Fatalf("NewEvents: %v", err)
	}

	evs.Next()
	if _, ok := evs.Next(); ok {
		t.Fatal("events left after drain")
	}
	evs.Reset()
	if _, ok := evs.Next(); !ok {
		t.Error("no events after Reset")
	}
}

func TestEventsRejectEmpty(t *testing.T) {
	t.Parallel()

	if _, err := midi.NewEvents(nil); !errors.Is(err, midi.ErrNoEvents) {
		t.Errorf("err = %v, want ErrNoEvents", err)
	}
}

func TestNoteKey(t *testing.T) {
	t.Parallel()

	ev := midi.Event{Channel: 3, Key: 64, Velocity: 100}
	if got := ev.NoteKey(); got != (midi.NoteKey{Channel: 3, Key: 64}) {
		t.Errorf("NoteKey() = %v", got)
	}
}

func TestDrive(t *testing.T) {
	t.Parallel()

	evs, err := midi.NewEvents([]midi.Event{
		{Time: units.Samples(5), On: true, Key: 60, Velocity: 100},
		{Time: units.Samples(8), On: true, Key: 64, Velocity: 100},
		{Time: units.Samples(12), On: false, Key: 60},
		{Time: units.Samples(15), On: false, Key: 64},
	})
	if err != nil {
		t.Fatalf("NewEvents: %v", err)
	}

	mgr := poly.NewManager[midi.NoteKey]()
	voices := make(map[midi.NoteKey]*sigtest.FiniteVoice)
	root, err := midi.Drive(evs, mgr, func(ev midi.Event) signal.Voice {
		v := &sigtest.FiniteVoice{V: 1, Tail: 2}
		voices[ev.NoteKey()] = v
		return v
	})
	if err != nil {
		t.Fatalf("Drive: %v", err)
	}

	counts := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		root.Advance()
		counts = append(counts, mgr.Len())
	}

	// counts[k] holds the live-voice count after k+1 advances. Voices
	// appear on advances 5 and 8; note-offs on 12 and 15 start two-sample
	// tails, so the voices are pruned on advances 14 and 17.
	want := map[int]int{3: 0, 4: 1, 6: 1, 7: 2, 12: 2, 13: 1, 15: 1, 16: 0}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("live voices at counts[%d] = %d, want %d", k, counts[k], n)
		}
	}

	if !root.Done() {
		t.Error("schedule not done after every event fired")
	}
	if len(voices) != 2 {
		t.Errorf("built %d voices, want 2", len(voices))
	}
}

func TestDriveEmptySource(t *testing.T) {
	t.Parallel()

	evs, err := midi.NewEvents([]midi.Event{{Time: units.Samples(1), On: true}})
	if err != nil {
		t.Fatalf("NewEvents: %v", err)
	}
	evs.Next() // drain before handing over

	_, err = midi.Drive(evs, poly.NewManager[midi.NoteKey](), func(midi.Event) signal.Voice {
		return &sigtest.FiniteVoice{}
	})
	if !errors.Is(err, midi.ErrNoEvents) {
		t.Errorf("err = %v, want ErrNoEvents", err)
	}
}
