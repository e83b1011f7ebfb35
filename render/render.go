package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-classd/dsp/core"
)

var (
	ErrEmptySeries       = errors.New("render: series is empty")
	ErrLengthMismatch    = errors.New("render: series length differs from time axis")
	ErrInvalidSampleRate = errors.New("render: sample rate must be positive")
	ErrInvalidRange      = errors.New("render: range must be finite and non-empty")
)

// Chart describes the decorations of a line chart.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	// YRange fixes the y axis when non-nil; otherwise it autoscales.
	YRange *[2]float64

	// MaxPoints limits the points drawn per series by keeping every k-th
	// sample. Zero draws everything.
	MaxPoints int
}

func validate(x []float64, series []core.Series) error {
	for _, s := range series {
		if s.Len() != len(x) {
			return fmt.Errorf("%w: %q has %d samples, axis has %d", ErrLengthMismatch, s.Label, s.Len(), len(x))
		}
	}
	return nil
}

// stride returns the decimation factor keeping at most maxPoints of n.
func stride(n, maxPoints int) int {
	if maxPoints <= 0 || n <= maxPoints {
		return 1
	}
	return int(math.Ceil(float64(n) / float64(maxPoints)))
}
