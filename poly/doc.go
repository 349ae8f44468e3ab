// SPDX-License-Identifier: EPL-2.0

// Package poly implements a polyphonic voice manager: a keyed collection of
// independently releasable signal nodes summed into one output.
//
// Keys are chosen by the caller (MIDI note numbers are typical) and are
// unique at any instant. Releasing a voice does not remove it (release is
// not instantaneous), it only begins the voice's tail. Removal happens in
// the maintenance pass at the end of Advance, once a voice reports Done.
// That ordering guarantees a voice contributes its final frame on the
// sample where it finishes and is gone from the next sample on.
//
//	mgr := poly.NewManager[int]()
//	mgr.Add(60, voiceC)           // note on
//	mgr.Release(60)               // note off; tail keeps sounding
//	... render more samples ...   // pruned once the tail reports done
package poly
