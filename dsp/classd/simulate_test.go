package classd

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-classd/internal/testutil"
)

func TestSimulateReferenceLength(t *testing.T) {
	tr := Simulate(DefaultCircuit())
	if tr.Len() != 50000 {
		t.Fatalf("len = %d, want 50000", tr.Len())
	}
	for name, s := range map[string][]float64{
		"oscillator": tr.Oscillator,
		"audio":      tr.Audio,
		"comparator": tr.Comparator,
		"integrator": tr.Integrator,
	} {
		if len(s) != tr.Len() {
			t.Fatalf("%s len = %d, want %d", name, len(s), tr.Len())
		}
		testutil.RequireFinite(t, s)
	}
}

func TestSimulateShortRun(t *testing.T) {
	c := DefaultCircuit()
	c.MaxTime = 1e-3
	tr := Simulate(c)
	if tr.Len() != 5000 {
		t.Fatalf("len = %d, want 5000", tr.Len())
	}
	if tr.Audio[0] != 6 {
		t.Fatalf("audio[0] = %v, want 6", tr.Audio[0])
	}
	testutil.RequireNearlyEqual(t, "oscillator[0]", tr.Oscillator[0], 4, 1e-12)
	testutil.RequireInRange(t, tr.Oscillator, 0, c.VCC)
	testutil.RequireInRange(t, tr.Audio, 4, 8)
	for i, v := range tr.Comparator {
		if v != 0 && v != c.VCC {
			t.Fatalf("comparator[%d] = %v, want 0 or VCC", i, v)
		}
	}
}

func TestSimulateMatchesManualChain(t *testing.T) {
	c := DefaultCircuit()
	c.MaxTime = 2e-4
	tr := Simulate(c)

	osc := NewOscillator(c.OscillatorConfig())
	audio := NewAudio(c.AudioConfig())
	comp := NewComparator(c.VCC)
	integ := NewIntegrator(c.VCC)

	for i, x := range tr.T {
		o := osc.Evaluate(x)
		a := audio.Evaluate(x)
		p := comp.Evaluate(a, o)
		v := integ.Evaluate(x, p)
		if tr.Oscillator[i] != o || tr.Audio[i] != a || tr.Comparator[i] != p || tr.Integrator[i] != v {
			t.Fatalf("sample %d differs from manual evaluation", i)
		}
	}
}

func TestSimulateDutyCycle(t *testing.T) {
	c := DefaultCircuit()
	tr := Simulate(c)
	sum := 0.0
	for _, v := range tr.Comparator {
		sum += v
	}
	duty := sum / float64(tr.Len()) / c.VCC
	if duty <= 0.4 || duty >= 0.6 {
		t.Fatalf("duty cycle = %v, want about 0.5", duty)
	}
}

func TestSimulateZeroCapacitancePropagatesNaN(t *testing.T) {
	c := DefaultCircuit()
	c.MaxTime = 1e-3
	c.C = 0
	tr := Simulate(c)

	if tr.Len() != 5000 {
		t.Fatalf("len = %d, want 5000", tr.Len())
	}
	for i, v := range tr.Oscillator {
		if !math.IsNaN(v) {
			t.Fatalf("oscillator[%d] = %v, want NaN", i, v)
		}
	}
	for i, v := range tr.Comparator {
		if v != 0 {
			t.Fatalf("comparator[%d] = %v, want 0", i, v)
		}
	}
	testutil.RequireFinite(t, tr.Integrator)
	testutil.RequireNearlyEqual(t, "integrator[3]", tr.Integrator[3], 5.9999928, 1e-12)
}

func TestSimulateInvalidStepPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero step")
		}
	}()
	c := DefaultCircuit()
	c.Step = 0
	Simulate(c)
}

func TestTraceSeries(t *testing.T) {
	tr := Trace{
		T:          []float64{0},
		Oscillator: []float64{1},
		Audio:      []float64{2},
		Comparator: []float64{3},
		Integrator: []float64{4},
	}

	tests := []struct {
		name   string
		d      Display
		labels []string
	}{
		{name: "none", d: Display{}, labels: nil},
		{name: "reference", d: DefaultCircuit().Display, labels: []string{LabelMusic, LabelIntegrator}},
		{
			name:   "all",
			d:      Display{Oscillator: true, Comparator: true, Music: true, Integrator: true},
			labels: []string{LabelOscillator, LabelMusic, LabelComparator, LabelIntegrator},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Series(tt.d)
			if len(got) != len(tt.labels) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.labels))
			}
			for i, s := range got {
				if s.Label != tt.labels[i] {
					t.Fatalf("series %d label = %q, want %q", i, s.Label, tt.labels[i])
				}
				if s.Len() != 1 {
					t.Fatalf("series %d len = %d, want 1", i, s.Len())
				}
			}
		})
	}
}

func TestTraceByName(t *testing.T) {
	tr := Trace{Integrator: []float64{7}}
	s, ok := tr.ByName("integr")
	if !ok || s.Label != LabelIntegrator || s.Values[0] != 7 {
		t.Fatalf("ByName(integr) = %+v, %v", s, ok)
	}
	if _, ok := tr.ByName("speaker"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestDisplayClampY(t *testing.T) {
	tests := []struct {
		name string
		d    Display
		want bool
	}{
		{name: "integrator-only", d: Display{Integrator: true}, want: false},
		{name: "nothing", d: Display{}, want: true},
		{name: "music", d: Display{Music: true, Integrator: true}, want: true},
		{name: "oscillator", d: Display{Oscillator: true}, want: true},
		{name: "comparator", d: Display{Comparator: true, Integrator: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.ClampY(); got != tt.want {
				t.Fatalf("ClampY() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircuitYRange(t *testing.T) {
	c := DefaultCircuit()
	lo, hi, ok := c.YRange()
	if !ok || lo != 0 {
		t.Fatalf("YRange() = %v, %v, %v", lo, hi, ok)
	}
	testutil.RequireNearlyEqual(t, "hi", hi, 12.12, 1e-12)

	c.Display = Display{Integrator: true}
	if _, _, ok := c.YRange(); ok {
		t.Fatal("integrator-only display must autoscale")
	}
}
