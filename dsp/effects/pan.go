package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/core"
	"github.com/cwbudde/algo-fxrender/dsp/signal"
)

// PanOption mutates construction-time parameters.
type PanOption func(*panConfig) error

type panConfig struct {
	pan    float64
	auto   bool
	rateHz float64
	depth  float64
}

// WithPan sets the static pan position in [-1, 1].
func WithPan(pan float64) PanOption {
	return func(cfg *panConfig) error {
		if err := checkRange("pan", "position", pan, -1, 1); err != nil {
			return err
		}
		cfg.pan = pan
		return nil
	}
}

// WithAutoPan replaces the static position with depth·sin(2π·rate·t).
func WithAutoPan(rateHz, depth float64) PanOption {
	return func(cfg *panConfig) error {
		if err := checkPositive("pan", "rate", rateHz); err != nil {
			return err
		}
		if err := checkRange("pan", "depth", depth, 0, 1); err != nil {
			return err
		}
		cfg.auto = true
		cfg.rateHz = rateHz
		cfg.depth = depth
		return nil
	}
}

// Panner is an equal-power stereo panner. Mono input passes unchanged
// and channels beyond the first two are left untouched.
type Panner struct {
	sampleRate float64
	pan        float64
	auto       bool
	rateHz     float64
	depth      float64
	lfo        *signal.Generator
}

// NewPanner creates a centered static panner unless overridden.
func NewPanner(sampleRate float64, opts ...PanOption) (*Panner, error) {
	if err := checkSampleRate("pan", sampleRate); err != nil {
		return nil, err
	}

	var cfg panConfig
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

	return &Panner{
		sampleRate: sampleRate,
		pan:        cfg.pan,
		auto:       cfg.auto,
		rateHz:     cfg.rateHz,
		depth:      cfg.depth,
		lfo:        lfo,
	}, nil
}

// PanAt returns the pan position at sample index i.
func (p *Panner) PanAt(i int) float64 {
	if !p.auto {
		return p.pan
	}
	t := float64(i) / p.sampleRate
	return core.Clamp(p.depth*math.Sin(2*math.Pi*p.rateHz*t), -1, 1)
}

// Process pans channels 0 and 1 of b in place.
func (p *Panner) Process(b *buffer.Buffer) error {
	if b == nil || b.NumChannels() < 2 {
		return nil
	}
	return p.ProcessStereo(b.Channel(0), b.Channel(1))
}

// ProcessStereo pans a left/right pair in place.
func (p *Panner) ProcessStereo(left, right []float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("pan channel lengths differ: %d != %d", len(left), len(right))
	}
	if len(left) == 0 {
		return nil
	}

	if !p.auto {
		if p.pan == 0 {
			return nil
		}
		for i := range left {
			left[i], right[i] = panFrame(left[i], right[i], p.pan)
		}
		return nil
	}

	pos := scratch.Get(len(left))
	defer scratch.Put(pos)

	p.lfo.SineInto(pos, p.rateHz, p.depth)
	for i := range left {
		left[i], right[i] = panFrame(left[i], right[i], pos[i])
	}

	return nil
}

// panFrame applies the stereo-input equal-power law to one frame.
func panFrame(inL, inR, pan float64) (float64, float64) {
	if pan <= 0 {
		x := (pan + 1) * math.Pi / 2
		return inL + inR*math.Cos(x), inR * math.Sin(x)
	}
	x := pan * math.Pi / 2
	return inL * math.Cos(x), inR + inL*math.Sin(x)
}

// Pan returns the static pan position.
func (p *Panner) Pan() float64 { return p.pan }

// IsAuto reports whether the position is LFO driven.
func (p *Panner) IsAuto() bool { return p.auto }

// RateHz returns the auto-pan rate in Hz.
func (p *Panner) RateHz() float64 { return p.rateHz }

// Depth returns the auto-pan depth.
func (p *Panner) Depth() float64 { return p.depth }
