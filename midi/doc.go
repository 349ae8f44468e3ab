// SPDX-License-Identifier: EPL-2.0

// Package midi supplies note events to the engine: an ordered, restartable
// stream of timestamped note-on/off events with channel, key and velocity.
//
// The engine does not parse MIDI files. Events come either from an
// in-memory slice (NewEvents) or from a live input device via portmidi
// (OpenPortMidi). Drive turns any event source into a scheduler that plays
// a polyphonic voice manager: note-on adds a voice keyed by channel and
// note number, note-off releases it.
//
//	mgr := poly.NewManager[midi.NoteKey]()
//	seq, err := midi.Drive(src, mgr, func(ev midi.Event) signal.Voice {
//	    return newPluck(units.NoteFreq(int(ev.Key), rate), ev.Velocity)
//	})
//	frames := signal.Render(n, seq)
package midi
