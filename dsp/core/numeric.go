package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Rescale maps value linearly from [fromLo, fromHi] onto [toLo, toHi].
// The result is not clamped. A degenerate source range maps to the
// midpoint of the target range.
func Rescale(value, fromLo, fromHi, toLo, toHi float64) float64 {
	span := fromHi - fromLo
	if span == 0 {
		return (toLo + toHi) / 2
	}
	return toLo + (value-fromLo)/span*(toHi-toLo)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
