// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared across the engine: PCM
// conversions and the interpolation kernels used for resampling and
// time-stretching.
package utils

func FloatToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

func Float32ToInt16(x float32) int16 {
	return FloatToInt16(float64(x))
}

func Int16ToFloat(v int16) float64 {
	return float64(v) / 32768.0
}
