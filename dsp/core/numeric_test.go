package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRescale(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "low", value: 0, want: -1},
		{name: "mid", value: 6, want: 0},
		{name: "high", value: 12, want: 1},
		{name: "outside", value: 18, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rescale(tt.value, 0, 12, -1, 1)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Rescale(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if got := Rescale(3, 5, 5, -1, 1); got != 0 {
		t.Fatalf("degenerate Rescale = %v, want 0", got)
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %v, want -Inf", got)
	}
	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1) = %v, want NaN", got)
	}
}
