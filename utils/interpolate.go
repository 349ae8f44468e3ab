// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate performs Catmull-Rom cubic interpolation.
// x is the fractional position between y1 and y2 (0 <= x <= 1);
// y0, y1, y2, y3 are four consecutive samples.
func CubicInterpolate(y0, y1, y2, y3, x float64) float64 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// CubicInterpolate32 is CubicInterpolate over float32 PCM streams.
func CubicInterpolate32(y0, y1, y2, y3, x float32) float32 {
	return float32(CubicInterpolate(float64(y0), float64(y1), float64(y2), float64(y3), float64(x)))
}

// HermiteInterpolate interpolates between y1 and y2 with a smoother
// first-derivative than Catmull-Rom at the cost of a slightly duller top
// end. Same argument convention as CubicInterpolate.
func HermiteInterpolate(y0, y1, y2, y3, x float64) float64 {
	diff := y1 - y2
	c1 := y2 - y0
	c3 := y3 - y0 + 3*diff
	c2 := -(2*diff + c1 + c3)

	return ((c3*x+c2)*x+c1)*x*0.5 + y1
}

// LinearInterpolate blends y1 towards y2 by x.
func LinearInterpolate(y1, y2, x float64) float64 {
	return y1*(1-x) + y2*x
}
