// SPDX-License-Identifier: EPL-2.0

// Package effects implements time-based and waveshaping effect nodes:
// Delay and Distortion.
//
// A Delay plays its child back after a fixed number of samples, feeding
// the delayed signal back into itself at a configurable volume. The output
// is the wet signal only; mixing it with a signal.Ref of the child gives
// the usual dry/wet balance:
//
//	dry := gen.NewSaw(freq)
//	wet, _ := effects.NewDelay(dry, units.Seconds(0.3, rate), units.Half)
//	out := signal.NewMix(signal.NewRef(dry), wet)
//
// A feedback volume of 1 repeats forever; values in (0, 1) decay
// exponentially, one feedback step per buffer pass.
//
// Distortion applies a memoryless shaping function to every sample. The
// shapes (InfClip, Clip, Atan) all map zero to zero and keep output inside
// [-1, 1] for input inside [-1, 1].
package effects
