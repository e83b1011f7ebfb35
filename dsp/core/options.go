package core

// TimeBaseConfig defines the sampling grid of a simulation run.
type TimeBaseConfig struct {
	// MaxTime is the exclusive upper bound of the time axis in seconds.
	MaxTime float64
	// Step is the sampling interval in seconds.
	Step float64
}

// TimeBaseOption mutates a TimeBaseConfig.
type TimeBaseOption func(*TimeBaseConfig)

// DefaultTimeBaseConfig returns the reference run: 10 ms sampled with 500
// points per 100 us.
func DefaultTimeBaseConfig() TimeBaseConfig {
	// Divided at run time: the constant expression 1e-4/500 rounds once
	// and lands one ulp below the float64 quotient.
	span, points := 1e-4, 500.0
	return TimeBaseConfig{
		MaxTime: 1e-2,
		Step:    span / points,
	}
}

// WithMaxTime sets the length of the simulated interval.
func WithMaxTime(maxTime float64) TimeBaseOption {
	return func(cfg *TimeBaseConfig) {
		if maxTime > 0 {
			cfg.MaxTime = maxTime
		}
	}
}

// WithStep sets the sampling interval.
func WithStep(step float64) TimeBaseOption {
	return func(cfg *TimeBaseConfig) {
		if step > 0 {
			cfg.Step = step
		}
	}
}

// ApplyTimeBaseOptions applies zero or more options to the default config.
func ApplyTimeBaseOptions(opts ...TimeBaseOption) TimeBaseConfig {
	cfg := DefaultTimeBaseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SampleRate returns the sampling frequency implied by Step.
func (cfg TimeBaseConfig) SampleRate() float64 {
	return 1 / cfg.Step
}

// Samples returns the time axis described by cfg.
func (cfg TimeBaseConfig) Samples() ([]float64, error) {
	return Arange(0, cfg.MaxTime, cfg.Step)
}
