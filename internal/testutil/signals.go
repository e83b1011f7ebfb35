package testutil

import "math"

// DeterministicSine generates a sine wave sampled at sampleRate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Square generates a 0/high pulse train with the given period in samples
// and duty cycle in [0, 1]. Each period starts high.
func Square(period int, duty, high float64, length int) []float64 {
	out := make([]float64, length)
	if period <= 0 {
		return out
	}
	highSamples := int(math.Round(duty * float64(period)))
	for i := range out {
		if i%period < highSamples {
			out[i] = high
		}
	}
	return out
}

// TimeAxis returns n instants spaced by step, starting at 0.
func TimeAxis(step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
