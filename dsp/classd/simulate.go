package classd

import "github.com/cwbudde/algo-classd/dsp/core"

// Trace labels.
const (
	LabelOscillator = "NE555 (chopping signal)"
	LabelMusic      = "Music"
	LabelComparator = "Comparator output (PWM)"
	LabelIntegrator = "Integrator (speaker)"
)

// Sample holds every node voltage at one instant.
type Sample struct {
	T          float64
	Oscillator float64
	Audio      float64
	Comparator float64
	Integrator float64
}

// Chain wires the four generators in dependency order.
type Chain struct {
	Oscillator *Oscillator
	Audio      *Audio
	Comparator *Comparator
	Integrator *Integrator
}

// NewChain builds fresh generators for c.
func NewChain(c Circuit) *Chain {
	return &Chain{
		Oscillator: NewOscillator(c.OscillatorConfig()),
		Audio:      NewAudio(c.AudioConfig()),
		Comparator: NewComparator(c.VCC),
		Integrator: NewIntegrator(c.VCC),
	}
}

// Evaluate advances the chain to t. Calls must use non-decreasing t.
func (ch *Chain) Evaluate(t float64) Sample {
	s := Sample{T: t}
	s.Oscillator = ch.Oscillator.Evaluate(t)
	s.Audio = ch.Audio.Evaluate(t)
	s.Comparator = ch.Comparator.Evaluate(s.Audio, s.Oscillator)
	s.Integrator = ch.Integrator.Evaluate(t, s.Comparator)
	return s
}

// Trace holds the parallel output sequences of a run.
type Trace struct {
	T          []float64
	Oscillator []float64
	Audio      []float64
	Comparator []float64
	Integrator []float64
}

// Len returns the number of samples.
func (tr Trace) Len() int {
	return len(tr.T)
}

// Series returns the traces enabled in d, in plotting order.
func (tr Trace) Series(d Display) []core.Series {
	var out []core.Series
	if d.Oscillator {
		out = append(out, core.Series{Label: LabelOscillator, Values: tr.Oscillator})
	}
	if d.Music {
		out = append(out, core.Series{Label: LabelMusic, Values: tr.Audio})
	}
	if d.Comparator {
		out = append(out, core.Series{Label: LabelComparator, Values: tr.Comparator})
	}
	if d.Integrator {
		out = append(out, core.Series{Label: LabelIntegrator, Values: tr.Integrator})
	}
	return out
}

// ByName returns a trace by its short name: "ne", "music", "ao" or "integr".
func (tr Trace) ByName(name string) (core.Series, bool) {
	switch name {
	case "ne":
		return core.Series{Label: LabelOscillator, Values: tr.Oscillator}, true
	case "music":
		return core.Series{Label: LabelMusic, Values: tr.Audio}, true
	case "ao":
		return core.Series{Label: LabelComparator, Values: tr.Comparator}, true
	case "integr":
		return core.Series{Label: LabelIntegrator, Values: tr.Integrator}, true
	default:
		return core.Series{}, false
	}
}

// Simulate runs c over its time axis. It panics when c.Step is not a
// positive finite number.
func Simulate(c Circuit) Trace {
	return Run(core.MustArange(0, c.MaxTime, c.Step), NewChain(c))
}

// Run evaluates ch at every instant of x, which must be non-decreasing.
func Run(x []float64, ch *Chain) Trace {
	tr := Trace{
		T:          x,
		Oscillator: make([]float64, len(x)),
		Audio:      make([]float64, len(x)),
		Comparator: make([]float64, len(x)),
		Integrator: make([]float64, len(x)),
	}
	for i, t := range x {
		s := ch.Evaluate(t)
		tr.Oscillator[i] = s.Oscillator
		tr.Audio[i] = s.Audio
		tr.Comparator[i] = s.Comparator
		tr.Integrator[i] = s.Integrator
	}
	return tr
}
