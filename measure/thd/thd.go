// Package thd measures how faithfully a reconstructed signal reproduces a
// single tone: fundamental frequency and level, harmonic content, and DC.
package thd

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-classd/dsp/core"
	"github.com/cwbudde/algo-classd/dsp/window"
	timestats "github.com/cwbudde/algo-classd/stats/time"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultRangeLowerHz = 20.0
	defaultRangeUpperHz = 20000.0
)

var (
	ErrEmptySignal       = errors.New("thd: signal is empty")
	ErrInvalidSampleRate = errors.New("thd: sample rate must be positive")
	ErrFFTSize           = errors.New("thd: fft size must be a power of two >= signal length")
	ErrNoFundamental     = errors.New("thd: no fundamental in range")
)

// Config holds analysis parameters.
type Config struct {
	SampleRate float64
	// FFTSize defaults to the next power of two >= len(signal).
	FFTSize int
	// FundamentalFreq pins the fundamental; zero selects the strongest bin.
	FundamentalFreq float64
	RangeLowerFreq  float64
	RangeUpperFreq  float64
	// WindowType defaults to Hann when zero.
	WindowType window.Type
	// CaptureBins is the number of bins summed on each side of a peak.
	// Zero uses the main lobe half-width of WindowType.
	CaptureBins  int
	MaxHarmonics int
}

// Result holds analysis results. Harmonic levels are relative to the
// fundamental.
//
//nolint:revive
type Result struct {
	FundamentalFreq      float64
	FundamentalAmplitude float64 // peak amplitude of the fundamental
	DC                   float64
	THD                  float64
	THD_dB               float64
	Harmonics            []float64
	BinHz                float64
}

// AnalyzeSignal removes DC, applies the configured periodic window and
// evaluates the harmonic content of signal.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	if !(cfg.SampleRate > 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) || fftSize&(fftSize-1) != 0 {
		return Result{}, fmt.Errorf("%w: %d for %d samples", ErrFFTSize, fftSize, len(signal))
	}
	cfg.FFTSize = fftSize
	cfg = normalizeConfig(cfg)

	dc := timestats.DC(signal)

	buf := make([]float64, len(signal))
	copy(buf, signal)
	offset := make([]float64, len(signal))
	for i := range offset {
		offset[i] = -dc
	}
	vecmath.AddBlockInPlace(buf, offset)

	win := window.Generate(cfg.WindowType, len(signal), window.WithPeriodic())
	vecmath.MulBlockInPlace(buf, win)

	in := make([]complex128, fftSize)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("thd: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("thd: fft: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	res, err := FromMagnitude(mag, cfg)
	if err != nil {
		return Result{}, err
	}

	// On-bin tone of amplitude A peaks at A/2 * sum(w).
	res.FundamentalAmplitude = 2 * res.FundamentalAmplitude / sum(win)
	res.DC = dc
	return res, nil
}

// FromMagnitude evaluates a magnitude spectrum holding bins [0..Nyquist].
// FundamentalAmplitude of the result is the raw peak-bin magnitude.
func FromMagnitude(mag []float64, cfg Config) (Result, error) {
	if len(mag) <= 1 {
		return Result{}, ErrEmptySignal
	}
	if !(cfg.SampleRate > 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}

	cfg = normalizeConfig(cfg)
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = 2 * (len(mag) - 1)
	}

	maxBin := len(mag) - 1
	binHz := cfg.SampleRate / float64(cfg.FFTSize)

	lowerBin := clampInt(int(math.Round(cfg.RangeLowerFreq/binHz)), 1, maxBin)
	upperBin := clampInt(int(math.Round(cfg.RangeUpperFreq/binHz)), lowerBin, maxBin)

	fundamentalBin := findFundamentalBin(mag, lowerBin, upperBin, binHz, cfg.FundamentalFreq)

	captureBins := cfg.CaptureBins
	if captureBins*2 > fundamentalBin {
		captureBins = fundamentalBin / 2
	}

	fundamentalLevel := binSum(mag, fundamentalBin, captureBins)
	if fundamentalLevel <= 0 {
		return Result{}, fmt.Errorf("%w: [%v, %v] Hz", ErrNoFundamental, cfg.RangeLowerFreq, cfg.RangeUpperFreq)
	}

	var sumSq float64
	harmonics := make([]float64, 0, 8)
	for k := 2; ; k++ {
		if cfg.MaxHarmonics > 0 && len(harmonics) >= cfg.MaxHarmonics {
			break
		}
		bin := k * fundamentalBin
		if bin > upperBin {
			break
		}
		rel := binSum(mag, bin, captureBins) / fundamentalLevel
		harmonics = append(harmonics, rel)
		sumSq += rel * rel
	}

	thd := math.Sqrt(sumSq)

	return Result{
		FundamentalFreq:      float64(fundamentalBin) * binHz,
		FundamentalAmplitude: mag[fundamentalBin],
		THD:                  thd,
		THD_dB:               core.LinearToDB(thd),
		Harmonics:            harmonics,
		BinHz:                binHz,
	}, nil
}

func findFundamentalBin(mag []float64, lowerBin, upperBin int, binHz, freq float64) int {
	if freq > 0 {
		return clampInt(int(math.Round(freq/binHz)), lowerBin, upperBin)
	}

	best := lowerBin
	for i := lowerBin + 1; i <= upperBin; i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}
	return best
}

func normalizeConfig(cfg Config) Config {
	if cfg.RangeLowerFreq <= 0 {
		cfg.RangeLowerFreq = defaultRangeLowerHz
	}

	if cfg.RangeUpperFreq <= 0 {
		cfg.RangeUpperFreq = defaultRangeUpperHz
	}

	if cfg.RangeUpperFreq < cfg.RangeLowerFreq {
		cfg.RangeUpperFreq = cfg.RangeLowerFreq
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeHann
	}

	if cfg.CaptureBins <= 0 {
		cfg.CaptureBins = window.Info(cfg.WindowType).MainLobeBins
	}

	if cfg.MaxHarmonics < 0 {
		cfg.MaxHarmonics = 0
	}

	return cfg
}

func binSum(mag []float64, bin, captureBins int) float64 {
	lo := max(bin-captureBins, 0)
	hi := min(bin+captureBins, len(mag)-1)

	s := 0.0
	for i := lo; i <= hi; i++ {
		s += mag[i]
	}
	return s
}

func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}

	if val > hi {
		return hi
	}

	return val
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
