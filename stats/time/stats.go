// Package time computes time-domain statistics of simulated node voltages.
package time

import "math"

// Stats holds time-domain statistics of one trace.
type Stats struct {
	Length      int
	DC          float64 // mean
	RMS         float64
	ACRMS       float64 // RMS around DC (standard deviation)
	Max         float64
	MaxPos      int
	Min         float64
	MinPos      int
	Range       float64 // max - min, the ripple of a nominally constant node
	Transitions int     // number of level changes between consecutive samples
}

// Calculate computes all statistics in a single pass, using Welford's
// online update for the variance.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean        float64
		m2          float64
		sumSq       float64
		maxVal      = signal[0]
		maxPos      int
		minVal      = signal[0]
		minPos      int
		transitions int
	)

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1] != x {
			transitions++
		}
	}

	nf := float64(n)

	return Stats{
		Length:      n,
		DC:          mean,
		RMS:         math.Sqrt(sumSq / nf),
		ACRMS:       math.Sqrt(m2 / nf),
		Max:         maxVal,
		MaxPos:      maxPos,
		Min:         minVal,
		MinPos:      minPos,
		Range:       maxVal - minVal,
		Transitions: transitions,
	}
}

// DC returns the mean of the signal using Kahan summation.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// DutyCycle returns the fraction of samples at or above half of high.
// For a 0/high PWM trace this is the share of time the output is high.
func DutyCycle(signal []float64, high float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	threshold := high / 2
	on := 0
	for _, x := range signal {
		if x >= threshold {
			on++
		}
	}

	return float64(on) / float64(len(signal))
}

// Periods splits a PWM trace into complete periods, each starting at a
// rising edge, and returns the duty cycle of every period.
func Periods(signal []float64, high float64) []float64 {
	threshold := high / 2
	var (
		out    []float64
		start  = -1
		onTime int
	)

	for i := 1; i < len(signal); i++ {
		rising := signal[i-1] < threshold && signal[i] >= threshold
		if rising {
			if start >= 0 {
				out = append(out, float64(onTime)/float64(i-start))
			}
			start = i
			onTime = 0
		}
		if start >= 0 && signal[i] >= threshold {
			onTime++
		}
	}

	return out
}
