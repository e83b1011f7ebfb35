package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-classd/internal/testutil"
)

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", s)
	}
}

func TestCalculateDC(t *testing.T) {
	s := Calculate([]float64{6, 6, 6, 6})
	testutil.RequireNearlyEqual(t, "DC", s.DC, 6, 1e-12)
	testutil.RequireNearlyEqual(t, "RMS", s.RMS, 6, 1e-12)
	testutil.RequireNearlyEqual(t, "ACRMS", s.ACRMS, 0, 1e-12)
	if s.Range != 0 || s.Transitions != 0 {
		t.Fatalf("range=%v transitions=%d, want 0/0", s.Range, s.Transitions)
	}
}

func TestCalculatePWM(t *testing.T) {
	pwm := testutil.Square(10, 0.3, 12, 100)
	s := Calculate(pwm)

	if s.Length != 100 {
		t.Fatalf("length = %d, want 100", s.Length)
	}
	testutil.RequireNearlyEqual(t, "DC", s.DC, 3.6, 1e-12)
	testutil.RequireNearlyEqual(t, "RMS", s.RMS, math.Sqrt(0.3*144), 1e-12)
	testutil.RequireNearlyEqual(t, "ACRMS", s.ACRMS, 12*math.Sqrt(0.3*0.7), 1e-12)
	if s.Max != 12 || s.MaxPos != 0 || s.Min != 0 || s.MinPos != 3 {
		t.Fatalf("extremes = %v@%d %v@%d", s.Max, s.MaxPos, s.Min, s.MinPos)
	}
	if s.Transitions != 19 {
		t.Fatalf("transitions = %d, want 19", s.Transitions)
	}
}

func TestDCMatchesCalculate(t *testing.T) {
	x := testutil.DeterministicSine(1000, 48000, 2, 480)
	for i := range x {
		x[i] += 6
	}
	testutil.RequireNearlyEqual(t, "DC", DC(x), Calculate(x).DC, 1e-12)
	testutil.RequireNearlyEqual(t, "DC", DC(x), 6, 1e-12)
	if DC(nil) != 0 {
		t.Fatal("DC(nil) must be 0")
	}
}

func TestDutyCycle(t *testing.T) {
	tests := []struct {
		name string
		duty float64
	}{
		{name: "low", duty: 0.1},
		{name: "half", duty: 0.5},
		{name: "high", duty: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pwm := testutil.Square(20, tt.duty, 12, 200)
			testutil.RequireNearlyEqual(t, "duty", DutyCycle(pwm, 12), tt.duty, 1e-12)
		})
	}

	if DutyCycle(nil, 12) != 0 {
		t.Fatal("DutyCycle(nil) must be 0")
	}
}

func TestPeriods(t *testing.T) {
	// Leading low samples so the first period starts on a rising edge.
	pwm := append([]float64{0, 0}, testutil.Square(10, 0.4, 12, 40)...)
	got := Periods(pwm, 12)
	if len(got) != 3 {
		t.Fatalf("periods = %d, want 3", len(got))
	}
	for _, d := range got {
		testutil.RequireNearlyEqual(t, "period duty", d, 0.4, 1e-12)
	}
}
