package effects

import (
	"github.com/cwbudde/algo-fxrender/dsp/filter/biquad"
	"github.com/cwbudde/algo-fxrender/dsp/filter/design"
)

const (
	defaultLowPassHz = 20000.0
	defaultLowPassQ  = 1.0
)

// LowPassOption mutates construction-time parameters.
type LowPassOption func(*lowPassConfig) error

type lowPassConfig struct {
	frequency float64
	q         float64
}

// WithLowPassFrequency sets the corner frequency in Hz.
func WithLowPassFrequency(hz float64) LowPassOption {
	return func(cfg *lowPassConfig) error {
		if err := checkPositive("lowpass", "frequency", hz); err != nil {
			return err
		}
		cfg.frequency = hz
		return nil
	}
}

// WithLowPassQ sets the resonance as a linear quality factor.
func WithLowPassQ(q float64) LowPassOption {
	return func(cfg *lowPassConfig) error {
		if err := checkPositive("lowpass", "q", q); err != nil {
			return err
		}
		cfg.q = q
		return nil
	}
}

// LowPass is a single resonant low-pass biquad. A corner at or above
// Nyquist passes the signal unchanged.
type LowPass struct {
	sampleRate float64
	frequency  float64
	q          float64
	coeffs     biquad.Coefficients
}

// NewLowPass creates a low-pass at 20 kHz with Q 1 unless overridden.
func NewLowPass(sampleRate float64, opts ...LowPassOption) (*LowPass, error) {
	if err := checkSampleRate("lowpass", sampleRate); err != nil {
		return nil, err
	}

	cfg := lowPassConfig{frequency: defaultLowPassHz, q: defaultLowPassQ}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &LowPass{
		sampleRate: sampleRate,
		frequency:  cfg.frequency,
		q:          cfg.q,
		coeffs:     design.Lowpass(cfg.frequency, cfg.q, sampleRate),
	}, nil
}

// ProcessInPlace filters one channel in place.
func (l *LowPass) ProcessInPlace(buf []float64) error {
	biquad.NewSection(l.coeffs).ProcessBlock(buf)
	return nil
}

// Coefficients returns the biquad coefficients.
func (l *LowPass) Coefficients() biquad.Coefficients { return l.coeffs }

// Frequency returns the corner frequency in Hz.
func (l *LowPass) Frequency() float64 { return l.frequency }

// Q returns the quality factor.
func (l *LowPass) Q() float64 { return l.q }
