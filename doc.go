// SPDX-License-Identifier: EPL-2.0

// Package audsynth is a compositional, sample-accurate audio synthesis
// engine: a library of stream-processing nodes (oscillators, envelopes,
// filters, schedulers, buffer players) combined into a graph and pulled
// one sample at a time.
//
// # The model
//
// Every node obeys one contract (see the signal package): Get returns the
// current frame without mutating anything, Advance moves the node forward
// exactly one sample, Retrigger resets it. A render loop calls Get then
// Advance on the root once per output sample; everything else composes
// underneath. The graph is single-threaded and allocation-free in the
// per-sample path.
//
// # Quick start
//
// A one-second 440 Hz sine, rendered to a WAV file:
//
//	rate := units.CD
//	osc := gen.NewSine(units.NewFreq(440, rate))
//	root := signal.NewGain(osc, units.NewVolDB(-6))
//
//	f, _ := os.Create("tone.wav")
//	err := audsynth.RenderWAV(f, units.Seconds(1, rate), rate, root)
//
// # Playing notes
//
// Polyphony comes from a voice manager driven by a scheduler. A voice is
// any node that can be stopped and reports when its release tail has died
// out; an oscillator wrapped by an ADSR envelope is the usual shape:
//
//	mgr := poly.NewManager[int]()
//	env, _ := envelope.NewADSR(
//	    units.Seconds(0.01, rate), units.Seconds(0.1, rate),
//	    0.6, units.Seconds(0.3, rate))
//	mgr.Add(60, envelope.NewApply(gen.NewSaw(units.NoteFreq(60, rate)), env))
//	mgr.Release(60) // later: begins the release tail
//
// The control package schedules those calls sample-accurately from
// interval lists, and the midi package does the same from note events.
//
// # Sample material
//
// The formats subpackages decode WAV, MP3, Ogg Vorbis and AIFF files into
// buffers (see Decode); the buffer package plays them back once, looped,
// or time-stretched. RenderWAV exports any graph back to disk, and the
// stream package adapts a graph to a beep.Streamer for live output.
package audsynth
