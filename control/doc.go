// SPDX-License-Identifier: EPL-2.0

// Package control implements sample-accurate event schedulers: Seq, Loop,
// Metronome and Timer.
//
// A Seq wraps a target signal together with an ordered list of intervals
// and a mutation function. It passes the target's samples through untouched;
// on every elapsed interval it calls the function once with the target.
// This is how melodies drive a voice manager: the function adds and stops
// voices while the manager keeps producing sound.
//
// Timing is counted in samples from the graph's own clock, so there is no
// drift: an event due after interval t fires on the t-th Advance. A
// zero-length interval fires on the very next sample, and a run of
// consecutive zero-length intervals is drained within that same sample.
//
// Seq fires each interval once and then reports Done (the target keeps
// ticking). Loop wraps around forever. Metronome and Timer are the
// single-interval polled variants: they produce no samples and mutate
// nothing, callers poll Fired after each Advance.
//
// An empty interval list is a configuration error, rejected at
// construction.
package control
