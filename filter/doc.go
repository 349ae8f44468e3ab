// SPDX-License-Identifier: EPL-2.0

// Package filter implements biquadratic (second-order IIR) filters: the
// closed-form coefficient designs of the Audio EQ Cookbook by Robert
// Bristow-Johnson, and a graph node applying them per channel.
//
// Coefficients are normalized so a0 = 1, leaving five values. The node's
// per-sample transfer function is
//
//	y[n] = b0·x[n] + b1·x[n-1] + b2·x[n-2] − a1·y[n-1] − a2·y[n-2]
//
// with the two-sample input/output history updated exactly once per sample.
//
// Coefficients may be swapped at runtime without resetting history: an
// envelope sweeping LowPass designs builds the classic closing-filter
// effect. A swap can produce an audible transient; no smoothing is applied,
// shaping it is the caller's job.
package filter
