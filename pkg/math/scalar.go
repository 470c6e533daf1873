package math

import "github.com/chewxy/math32"

// ToRadians converts degrees to radians
const ToRadians = math32.Pi / 180

// AreEqual reports whether two scalars are equal within epsilon
func AreEqual(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

// Clamp restricts v to the interval [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by factor t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
