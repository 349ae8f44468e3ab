// SPDX-License-Identifier: EPL-2.0

// Package gen implements the leaf oscillators of a graph: sine, sawtooth,
// square, triangle and noise.
//
// Every oscillator keeps a phase in [0, 1) advanced by its frequency's
// cycles-per-sample each Advance. Get computes the waveform purely from the
// stored phase, so reading twice within one sample is safe. Retrigger resets
// the phase to zero, which is how repeated note starts reuse one oscillator.
//
// All oscillators produce full-scale mono output in [-1, 1]; scale with
// signal.Gain or an envelope before mixing several of them.
package gen
