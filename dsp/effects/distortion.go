package effects

import (
	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/filter/biquad"
	"github.com/cwbudde/algo-fxrender/dsp/filter/design"
	"github.com/cwbudde/algo-fxrender/dsp/resample"
	"github.com/cwbudde/algo-fxrender/dsp/shaper"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultDistortionDrive     = 1.0
	defaultDistortionCharacter = 0.0
	defaultDistortionToneHz    = 8000.0
	defaultOversampling        = 4

	minDistortionDrive = 1.0
	maxDistortionDrive = 100.0
)

var scratch = buffer.NewPool()

// DistortionOption mutates construction-time parameters.
type DistortionOption func(*distortionConfig) error

type distortionConfig struct {
	drive        float64
	character    float64
	toneHz       float64
	oversampling int
}

func defaultDistortionConfig() distortionConfig {
	return distortionConfig{
		drive:        defaultDistortionDrive,
		character:    defaultDistortionCharacter,
		toneHz:       defaultDistortionToneHz,
		oversampling: defaultOversampling,
	}
}

// WithDistortionDrive sets the linear input gain in [1, 100].
func WithDistortionDrive(drive float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if err := checkRange("distortion", "drive", drive, minDistortionDrive, maxDistortionDrive); err != nil {
			return err
		}
		cfg.drive = drive
		return nil
	}
}

// WithDistortionCharacter sets the waveshaper curvature in [0, 1].
func WithDistortionCharacter(character float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if err := checkRange("distortion", "character", character, 0, 1); err != nil {
			return err
		}
		cfg.character = character
		return nil
	}
}

// WithDistortionTone sets the post-shaper low-pass corner in Hz.
func WithDistortionTone(hz float64) DistortionOption {
	return func(cfg *distortionConfig) error {
		if err := checkPositive("distortion", "tone", hz); err != nil {
			return err
		}
		cfg.toneHz = hz
		return nil
	}
}

// WithDistortionOversampling sets the waveshaper oversampling factor.
// 1 disables oversampling.
func WithDistortionOversampling(factor int) DistortionOption {
	return func(cfg *distortionConfig) error {
		if err := checkRange("distortion", "oversampling", float64(factor), 1, 16); err != nil {
			return err
		}
		cfg.oversampling = factor
		return nil
	}
}

// Distortion applies drive gain, a soft-clipping waveshaper run at an
// oversampled rate, and a low-pass tone filter, in that order.
type Distortion struct {
	sampleRate float64
	drive      float64
	character  float64
	toneHz     float64

	curve []float64
	os    *resample.Oversampler
	tone  biquad.Coefficients
}

// NewDistortion creates a distortion with unity drive, a linear curve, and
// an 8 kHz tone filter unless overridden.
func NewDistortion(sampleRate float64, opts ...DistortionOption) (*Distortion, error) {
	if err := checkSampleRate("distortion", sampleRate); err != nil {
		return nil, err
	}

	cfg := defaultDistortionConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	over, err := resample.NewOversampler(cfg.oversampling)
	if err != nil {
		return nil, err
	}

	return &Distortion{
		sampleRate: sampleRate,
		drive:      cfg.drive,
		character:  cfg.character,
		toneHz:     cfg.toneHz,
		curve:      shaper.Curve(cfg.character),
		os:         over,
		tone:       design.Lowpass(cfg.toneHz, design.ShelfQ, sampleRate),
	}, nil
}

// ProcessInPlace distorts one channel in place.
func (d *Distortion) ProcessInPlace(buf []float64) error {
	if len(buf) == 0 {
		return nil
	}

	vecmath.ScaleBlockInPlace(buf, d.drive)

	up := scratch.Get(len(buf) * d.os.Factor())
	defer scratch.Put(up)

	up = d.os.Upsample(up, buf)
	shaper.ApplyBlock(d.curve, up)
	d.os.Downsample(buf, up)

	biquad.NewSection(d.tone).ProcessBlock(buf)

	return nil
}

// SampleRate returns sample rate in Hz.
func (d *Distortion) SampleRate() float64 { return d.sampleRate }

// Drive returns the linear input gain.
func (d *Distortion) Drive() float64 { return d.drive }

// Character returns the waveshaper curvature.
func (d *Distortion) Character() float64 { return d.character }

// ToneHz returns the tone filter corner in Hz.
func (d *Distortion) ToneHz() float64 { return d.toneHz }

// Oversampling returns the waveshaper oversampling factor.
func (d *Distortion) Oversampling() int { return d.os.Factor() }
