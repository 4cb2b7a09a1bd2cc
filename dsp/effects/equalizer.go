package effects

import (
	"fmt"

	"github.com/cwbudde/algo-fxrender/dsp/filter/biquad"
	"github.com/cwbudde/algo-fxrender/dsp/filter/design"
)

// NumEqualizerBands is the fixed number of equalizer bands.
const NumEqualizerBands = 7

const (
	peakingBandQ       = 1.2
	maxEqualizerGainDB = 30.0
)

// EqualizerBand describes one fixed equalizer section.
type EqualizerBand struct {
	Frequency float64
	Kind      design.Kind
	Q         float64
}

// EqualizerBands lists the sections in processing order.
var EqualizerBands = [NumEqualizerBands]EqualizerBand{
	{Frequency: 80, Kind: design.LowShelf, Q: design.ShelfQ},
	{Frequency: 250, Kind: design.Peaking, Q: peakingBandQ},
	{Frequency: 500, Kind: design.Peaking, Q: peakingBandQ},
	{Frequency: 1000, Kind: design.Peaking, Q: peakingBandQ},
	{Frequency: 2500, Kind: design.Peaking, Q: peakingBandQ},
	{Frequency: 5000, Kind: design.Peaking, Q: peakingBandQ},
	{Frequency: 10000, Kind: design.HighShelf, Q: design.ShelfQ},
}

// EqualizerOption mutates construction-time parameters.
type EqualizerOption func(*equalizerConfig) error

type equalizerConfig struct {
	gains [NumEqualizerBands]float64
}

// WithEqualizerGains sets all band gains in dB, each in [-30, 30].
func WithEqualizerGains(gains [NumEqualizerBands]float64) EqualizerOption {
	return func(cfg *equalizerConfig) error {
		for i, g := range gains {
			if err := checkRange("equalizer", fmt.Sprintf("band %d gain", i), g, -maxEqualizerGainDB, maxEqualizerGainDB); err != nil {
				return err
			}
		}
		cfg.gains = gains
		return nil
	}
}

// WithEqualizerBandGain sets the gain of one band in dB.
func WithEqualizerBandGain(band int, gainDB float64) EqualizerOption {
	return func(cfg *equalizerConfig) error {
		if band < 0 || band >= NumEqualizerBands {
			return fmt.Errorf("equalizer band must be in [0, %d]: %d", NumEqualizerBands-1, band)
		}
		if err := checkRange("equalizer", fmt.Sprintf("band %d gain", band), gainDB, -maxEqualizerGainDB, maxEqualizerGainDB); err != nil {
			return err
		}
		cfg.gains[band] = gainDB
		return nil
	}
}

// Equalizer runs the seven fixed bands as one serial biquad chain. All
// bands are applied even at 0 dB, where each is flat.
type Equalizer struct {
	sampleRate float64
	gains      [NumEqualizerBands]float64
	coeffs     []biquad.Coefficients
}

// NewEqualizer creates a flat equalizer unless gains are supplied.
func NewEqualizer(sampleRate float64, opts ...EqualizerOption) (*Equalizer, error) {
	if err := checkSampleRate("equalizer", sampleRate); err != nil {
		return nil, err
	}

	var cfg equalizerConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Equalizer{
		sampleRate: sampleRate,
		gains:      cfg.gains,
		coeffs:     make([]biquad.Coefficients, NumEqualizerBands),
	}
	for i, band := range EqualizerBands {
		e.coeffs[i] = design.Design(band.Kind, band.Frequency, band.Q, cfg.gains[i], sampleRate)
	}

	return e, nil
}

// ProcessInPlace equalizes one channel in place.
func (e *Equalizer) ProcessInPlace(buf []float64) error {
	biquad.NewChain(e.coeffs).ProcessBlock(buf)
	return nil
}

// Coefficients returns a copy of the per-band coefficients.
func (e *Equalizer) Coefficients() []biquad.Coefficients {
	return append([]biquad.Coefficients(nil), e.coeffs...)
}

// Gains returns the band gains in dB.
func (e *Equalizer) Gains() [NumEqualizerBands]float64 { return e.gains }

// SampleRate returns sample rate in Hz.
func (e *Equalizer) SampleRate() float64 { return e.sampleRate }
