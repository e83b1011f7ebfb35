package classd

import "math"

// OscillatorConfig holds the external components of the astable oscillator.
type OscillatorConfig struct {
	R1  float64 // Ohms, between VCC and the discharge pin
	R2  float64 // Ohms, between discharge and threshold pins
	C   float64 // Farads, timing capacitor
	VCC float64 // Volts, supply
}

// OscillatorOption mutates an OscillatorConfig.
type OscillatorOption func(*OscillatorConfig)

// DefaultOscillatorConfig returns unit values for every component.
func DefaultOscillatorConfig() OscillatorConfig {
	return OscillatorConfig{R1: 1, R2: 1, C: 1, VCC: 1}
}

// WithResistors sets R1 and R2.
func WithResistors(r1, r2 float64) OscillatorOption {
	return func(cfg *OscillatorConfig) {
		cfg.R1 = r1
		cfg.R2 = r2
	}
}

// WithCapacitance sets the timing capacitor.
func WithCapacitance(c float64) OscillatorOption {
	return func(cfg *OscillatorConfig) {
		cfg.C = c
	}
}

// WithSupply sets the supply voltage.
func WithSupply(vcc float64) OscillatorOption {
	return func(cfg *OscillatorConfig) {
		cfg.VCC = vcc
	}
}

// Oscillator models the capacitor voltage of an NE555 in astable mode.
//
// The capacitor charges through R1+R2 and discharges through R2. Each phase
// lasts tau*ln(2); the phase timer is advanced by the time elapsed since the
// previous Evaluate call.
type Oscillator struct {
	vcc          float64
	tauCharge    float64
	tauDischarge float64

	phase    float64 // time spent in the current phase
	charging bool
	last     float64 // timestamp of the previous call
}

// NewOscillator creates an oscillator in the charging phase at t=0.
func NewOscillator(cfg OscillatorConfig) *Oscillator {
	return &Oscillator{
		vcc:          cfg.VCC,
		tauCharge:    cfg.C * (cfg.R1 + cfg.R2),
		tauDischarge: cfg.C * cfg.R2,
		charging:     true,
	}
}

// NewOscillatorWithOptions applies opts to DefaultOscillatorConfig.
func NewOscillatorWithOptions(opts ...OscillatorOption) *Oscillator {
	cfg := DefaultOscillatorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return NewOscillator(cfg)
}

// TauCharge returns C*(R1+R2).
func (o *Oscillator) TauCharge() float64 { return o.tauCharge }

// TauDischarge returns C*R2.
func (o *Oscillator) TauDischarge() float64 { return o.tauDischarge }

// Charging reports whether the oscillator is in its charging phase.
func (o *Oscillator) Charging() bool { return o.charging }

// Evaluate advances the oscillator to t and returns the capacitor voltage.
// t must not be smaller than the previous call's t.
func (o *Oscillator) Evaluate(t float64) float64 {
	dt := t - o.last
	o.last = t
	o.phase += dt

	tau := o.tauDischarge
	if o.charging {
		tau = o.tauCharge
	}

	if o.phase > tau*math.Ln2 {
		o.phase = 0
		o.charging = !o.charging
	}

	// Explicit conversions keep the products rounded separately (no FMA).
	if o.charging {
		return o.vcc * (1 - float64(2.0/3*math.Exp(-o.phase/tau)))
	}
	return 2.0 / 3 * o.vcc * math.Exp(-o.phase/tau)
}

// Reset returns the oscillator to its freshly constructed state.
func (o *Oscillator) Reset() {
	o.phase = 0
	o.charging = true
	o.last = 0
}
