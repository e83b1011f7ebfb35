package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidStep is returned when a time axis cannot be built from the given step.
var ErrInvalidStep = errors.New("core: step must be positive and finite")

// Arange returns the half-open sequence start, start+step, ... < stop.
//
// The sample count is ceil((stop-start)/step), so the result has the same
// length as numpy.arange for the same arguments. An empty slice is returned
// when stop <= start.
func Arange(start, stop, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("core: arange bounds must be finite: [%v, %v)", start, stop)
	}

	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return []float64{}, nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// MustArange is like Arange but panics on invalid arguments.
func MustArange(start, stop, step float64) []float64 {
	out, err := Arange(start, stop, step)
	if err != nil {
		panic(err)
	}
	return out
}
