package classd

import "math"

// BiasVoltage is the DC operating point of the music input.
const BiasVoltage = 6.0

// AudioConfig describes the music source.
type AudioConfig struct {
	Frequency float64 // Hz
	Amplitude float64 // Volts, peak to peak
}

// AudioOption mutates an AudioConfig.
type AudioOption func(*AudioConfig)

// DefaultAudioConfig returns a 1 Hz, 1 V source.
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{Frequency: 1, Amplitude: 1}
}

// WithFrequency sets the music frequency in Hz.
func WithFrequency(f float64) AudioOption {
	return func(cfg *AudioConfig) {
		cfg.Frequency = f
	}
}

// WithAmplitude sets the peak-to-peak music amplitude in Volts.
func WithAmplitude(a float64) AudioOption {
	return func(cfg *AudioConfig) {
		cfg.Amplitude = a
	}
}

// Audio is a biased sine source. It holds no mutable state.
type Audio struct {
	omega     float64
	amplitude float64
}

// NewAudio creates a music source from cfg.
func NewAudio(cfg AudioConfig) *Audio {
	return &Audio{
		omega:     cfg.Frequency * 2 * math.Pi,
		amplitude: cfg.Amplitude,
	}
}

// NewAudioWithOptions applies opts to DefaultAudioConfig.
func NewAudioWithOptions(opts ...AudioOption) *Audio {
	cfg := DefaultAudioConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return NewAudio(cfg)
}

// Omega returns the angular frequency in rad/s.
func (a *Audio) Omega() float64 { return a.omega }

// Period returns 2*pi/omega.
func (a *Audio) Period() float64 { return 2 * math.Pi / a.omega }

// Evaluate returns A/2*sin(omega*t) + BiasVoltage.
func (a *Audio) Evaluate(t float64) float64 {
	return float64(a.amplitude/2*math.Sin(t*a.omega)) + BiasVoltage
}
