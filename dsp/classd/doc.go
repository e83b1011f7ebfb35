// Package classd simulates the signal chain of a class-D amplifier.
//
// Four generators model the circuit:
//   - Oscillator: NE555-style astable oscillator producing the chopping ramp.
//   - Audio: sinusoidal music source biased at BiasVoltage.
//   - Comparator: ideal comparator turning audio vs. ramp into PWM.
//   - Integrator: re-triggering integrator reconstructing audio from PWM.
//
// Simulate drives all four over a sampled time axis and returns a Trace.
//
// The stateful generators (Oscillator, Integrator) derive their time step
// from the difference between consecutive Evaluate calls and therefore
// require non-decreasing timestamps. Out-of-order calls are unsupported:
// they produce a negative step that is applied as-is.
//
// No generator validates its parameters. Zero or negative time constants
// and decreasing timestamps yield NaN or Inf values that propagate through
// the chain unchanged.
package classd
