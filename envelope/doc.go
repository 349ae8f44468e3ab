// SPDX-License-Identifier: EPL-2.0

// Package envelope implements ADSR and AR level generators, and the Apply
// wrapper that turns an oscillator plus an envelope into a releasable voice.
//
// # State machine
//
// An ADSR walks through Attack → Decay → Sustain → Release → Done:
//
//  1. Attack ramps the level from 0 to 1 over the attack duration.
//  2. Decay falls from 1 to the sustain level.
//  3. Sustain holds until Stop is called.
//  4. Stop, from any non-terminal phase, captures the current level and
//     ramps it linearly to 0 over the release duration.
//  5. Done is terminal; only there does Done() report true.
//
// Retrigger unconditionally resets to Attack, keeping the configured
// durations. A zero-duration phase completes on the very next sample; a run
// of zero-duration phases collapses within that one sample.
//
// Durations are fixed at construction. Changing them mid-phase is not
// supported; build a new envelope instead.
//
// An AR envelope is the two-parameter special case: attack straight to full
// level, hold, and release from wherever the level currently is.
package envelope
