package common

// Clamp limits a value to the [min, max] range.
//
// Parameters:
//   - v: the value to clamp
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float32: v limited to [min, max]
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp linearly interpolates between a and b by weight t.
// t is not clamped; callers clamp when the weight is derived from a
// speed * dt product that may overshoot on a long frame.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation weight (0 = a, 1 = b)
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
