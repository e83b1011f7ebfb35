package classd

import "github.com/cwbudde/algo-classd/dsp/core"

// Display selects which traces are rendered.
type Display struct {
	Oscillator bool
	Comparator bool
	Music      bool
	Integrator bool
}

// ClampY reports whether the y axis should be fixed to [0, 1.01*VCC].
// Only a lone integrator trace is left to autoscale.
func (d Display) ClampY() bool {
	return d.Oscillator || d.Comparator || d.Music || !d.Integrator
}

// Circuit collects every parameter of a simulation run.
type Circuit struct {
	MaxTime float64 // s
	Step    float64 // s

	MusicFrequency float64 // Hz
	MusicAmplitude float64 // V

	R1  float64 // Ohms
	R2  float64 // Ohms
	C   float64 // Farads
	VCC float64 // V

	Display Display
}

// DefaultCircuit returns the reference amplifier: a 1 kHz, 4 V tone chopped
// by an NE555 with R1=1k, R2=22k, C=470p on a 12 V supply, simulated for
// 10 ms at 200 ns resolution.
func DefaultCircuit() Circuit {
	tb := core.DefaultTimeBaseConfig()
	return Circuit{
		MaxTime:        tb.MaxTime,
		Step:           tb.Step,
		MusicFrequency: 1000,
		MusicAmplitude: 4,
		R1:             1e3,
		R2:             22e3,
		C:              470e-12,
		VCC:            12,
		Display: Display{
			Music:      true,
			Integrator: true,
		},
	}
}

// TimeBase returns the sampling grid of the run.
func (c Circuit) TimeBase() core.TimeBaseConfig {
	return core.TimeBaseConfig{MaxTime: c.MaxTime, Step: c.Step}
}

// OscillatorConfig returns the NE555 component values.
func (c Circuit) OscillatorConfig() OscillatorConfig {
	return OscillatorConfig{R1: c.R1, R2: c.R2, C: c.C, VCC: c.VCC}
}

// AudioConfig returns the music source parameters.
func (c Circuit) AudioConfig() AudioConfig {
	return AudioConfig{Frequency: c.MusicFrequency, Amplitude: c.MusicAmplitude}
}

// YRange returns the fixed y-axis range and whether it applies.
func (c Circuit) YRange() (lo, hi float64, ok bool) {
	if !c.Display.ClampY() {
		return 0, 0, false
	}
	return 0, c.VCC * 101 / 100, true
}
