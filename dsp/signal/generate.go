package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates oscillator and noise signals at a fixed sample rate.
// Noise is drawn from one random source, so successive calls continue
// the same stream. A Generator is not safe for concurrent use.
type Generator struct {
	sampleRate float64
	rng        *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed draws noise from a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws noise from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// NewGenerator creates a generator for the given sample rate. Without
// WithSeed or WithRand the noise source is seeded with 1.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("generator sample rate must be > 0: %f", sampleRate)
	}

	g := &Generator{sampleRate: sampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}

	return g, nil
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates amplitude*sin(2π·freq·t) starting at t = 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples < 0 {
		return nil, fmt.Errorf("sine samples must be >= 0: %d", samples)
	}

	out := make([]float64, samples)
	g.SineInto(out, freqHz, amplitude)

	return out, nil
}

// SineInto fills dst with amplitude*sin(2π·freq·t) starting at t = 0.
func (g *Generator) SineInto(dst []float64, freqHz, amplitude float64) {
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range dst {
		dst[i] = amplitude * math.Sin(step*float64(i))
	}
}

// WhiteNoise generates uniform white noise in [-amplitude, amplitude).
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples < 0 {
		return nil, fmt.Errorf("noise samples must be >= 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = (g.rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}
