package classd

// Integrator reconstructs audio from the comparator output.
//
// It is a re-triggering integrator rather than a continuous one: the segment
// timer restarts whenever the input level changes, and each call adds
// (input - VCC/2) * segment to the running output.
type Integrator struct {
	vcc float64

	segment    float64 // time since the last input transition
	lastInput  float64
	lastOutput float64
	last       float64 // timestamp of the previous call
}

// NewIntegrator creates an integrator resting at VCC/2.
func NewIntegrator(vcc float64) *Integrator {
	return &Integrator{
		vcc:        vcc,
		lastOutput: vcc / 2,
	}
}

// Segment returns the time elapsed since the last input transition.
func (i *Integrator) Segment() float64 { return i.segment }

// Evaluate advances the integrator to t with the given input level.
// t must not be smaller than the previous call's t.
//
// The returned value is computed as (v-last)+last for the new candidate v,
// while v itself becomes the stored output. The two may differ in the last bit.
func (i *Integrator) Evaluate(t, in float64) float64 {
	dt := t - i.last
	i.last = t
	i.segment += dt

	if i.lastInput != in {
		i.lastInput = in
		i.segment = 0
	}

	v := float64((in-i.vcc/2)*i.segment) + i.lastOutput
	out := (v - i.lastOutput) + i.lastOutput
	i.lastOutput = v
	return out
}

// Reset returns the integrator to its freshly constructed state.
func (i *Integrator) Reset() {
	i.segment = 0
	i.lastInput = 0
	i.lastOutput = i.vcc / 2
	i.last = 0
}
