package effects

import (
	"math"

	"github.com/cwbudde/algo-fxrender/dsp/signal"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultTremoloRateHz = 5.0
	defaultTremoloDepth  = 0.0
)

// TremoloOption mutates tremolo construction parameters.
type TremoloOption func(*tremoloConfig) error

type tremoloConfig struct {
	rateHz float64
	depth  float64
}

func defaultTremoloConfig() tremoloConfig {
	return tremoloConfig{
		rateHz: defaultTremoloRateHz,
		depth:  defaultTremoloDepth,
	}
}

// WithTremoloRateHz sets modulation speed in Hz.
func WithTremoloRateHz(rateHz float64) TremoloOption {
	return func(cfg *tremoloConfig) error {
		if err := checkPositive("tremolo", "rate", rateHz); err != nil {
			return err
		}
		cfg.rateHz = rateHz
		return nil
	}
}

// WithTremoloDepth sets modulation depth in [0, 1].
func WithTremoloDepth(depth float64) TremoloOption {
	return func(cfg *tremoloConfig) error {
		if err := checkRange("tremolo", "depth", depth, 0, 1); err != nil {
			return err
		}
		cfg.depth = depth
		return nil
	}
}

// Tremolo applies sinusoidal amplitude modulation. The gain swings
// between 1 and 1-depth: gain(t) = 1 - depth·(sin(2π·rate·t)+1)/2.
type Tremolo struct {
	sampleRate float64
	rateHz     float64
	depth      float64
	lfo        *signal.Generator

	lfoPhase float64
}

// NewTremolo creates a 5 Hz tremolo with zero depth unless overridden.
func NewTremolo(sampleRate float64, opts ...TremoloOption) (*Tremolo, error) {
	if err := checkSampleRate("tremolo", sampleRate); err != nil {
		return nil, err
	}

	cfg := defaultTremoloConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	lfo, err := signal.NewGenerator(sampleRate)
	if err != nil {
		return nil, err
	}

	return &Tremolo{
		sampleRate: sampleRate,
		rateHz:     cfg.rateHz,
		depth:      cfg.depth,
		lfo:        lfo,
	}, nil
}

// Reset rewinds the modulation phase to t = 0.
func (t *Tremolo) Reset() {
	t.lfoPhase = 0
}

// Process processes one sample and advances the LFO.
func (t *Tremolo) Process(sample float64) float64 {
	gain := 1 - t.depth*(math.Sin(t.lfoPhase)+1)/2

	t.lfoPhase += 2 * math.Pi * t.rateHz / t.sampleRate
	if t.lfoPhase >= 2*math.Pi {
		t.lfoPhase -= 2 * math.Pi
	}

	return sample * gain
}

// Gain fills dst with the modulation envelope starting at t = 0.
func (t *Tremolo) Gain(dst []float64) {
	t.lfo.SineInto(dst, t.rateHz, 1)
	for i, s := range dst {
		dst[i] = 1 - t.depth*(s+1)/2
	}
}

// ProcessInPlace modulates one channel in place, starting at t = 0.
func (t *Tremolo) ProcessInPlace(buf []float64) error {
	if len(buf) == 0 || t.depth == 0 {
		return nil
	}

	env := scratch.Get(len(buf))
	defer scratch.Put(env)

	t.Gain(env)
	vecmath.MulBlockInPlace(buf, env)

	return nil
}

// SampleRate returns sample rate in Hz.
func (t *Tremolo) SampleRate() float64 { return t.sampleRate }

// RateHz returns modulation speed in Hz.
func (t *Tremolo) RateHz() float64 { return t.rateHz }

// Depth returns modulation depth in [0, 1].
func (t *Tremolo) Depth() float64 { return t.depth }
