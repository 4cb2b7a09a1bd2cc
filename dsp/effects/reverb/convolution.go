package reverb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/conv"
	"github.com/cwbudde/algo-fxrender/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const (
	gainCalibration           = 0.00125
	gainCalibrationSampleRate = 44100.0
	minPower                  = 0.000125

	maxPreDelaySeconds = 1.0
)

var scratch = buffer.NewPool()

// Option mutates construction-time parameters.
type Option func(*config) error

type config struct {
	mix       float64
	preDelay  float64
	normalize bool
}

// WithMix sets the wet share in [0, 1]. The dry path is scaled by 1-mix.
func WithMix(mix float64) Option {
	return func(cfg *config) error {
		if !core.InRange(mix, 0, 1) {
			return fmt.Errorf("reverb mix must be in [0, 1]: %f", mix)
		}
		cfg.mix = mix
		return nil
	}
}

// WithPreDelay delays the wet path by seconds in [0, 1].
func WithPreDelay(seconds float64) Option {
	return func(cfg *config) error {
		if !core.InRange(seconds, 0, maxPreDelaySeconds) {
			return fmt.Errorf("reverb pre-delay must be in [0, %g]: %f", maxPreDelaySeconds, seconds)
		}
		cfg.preDelay = seconds
		return nil
	}
}

// WithNormalization toggles impulse-response loudness normalization.
// It is enabled by default.
func WithNormalization(enabled bool) Option {
	return func(cfg *config) error {
		cfg.normalize = enabled
		return nil
	}
}

// ConvolutionReverb convolves each channel with one channel of a fixed
// impulse response and mixes the result with the dry signal. Channel c
// uses impulse channel c modulo the impulse channel count.
//
// A ConvolutionReverb owns FFT scratch and is not safe for concurrent use.
type ConvolutionReverb struct {
	sampleRate     float64
	mix            float64
	preDelay       float64
	preDelaySample int
	scale          float64

	engines []*conv.OverlapAdd
}

// NewConvolutionReverb prepares one FFT convolver per impulse channel.
func NewConvolutionReverb(ir *buffer.Buffer, opts ...Option) (*ConvolutionReverb, error) {
	if ir == nil || ir.NumChannels() == 0 || ir.Len() == 0 {
		return nil, ErrEmptyImpulse
	}

	cfg := config{normalize: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	r := &ConvolutionReverb{
		sampleRate:     ir.SampleRate(),
		mix:            cfg.mix,
		preDelay:       cfg.preDelay,
		preDelaySample: core.SecondsToSamples(cfg.preDelay, ir.SampleRate()),
		scale:          1,
		engines:        make([]*conv.OverlapAdd, ir.NumChannels()),
	}
	if cfg.normalize {
		r.scale = NormalizationScale(ir)
	}

	for c := range r.engines {
		engine, err := conv.NewOverlapAdd(ir.Channel(c), 0)
		if err != nil {
			return nil, fmt.Errorf("reverb: impulse channel %d: %w", c, err)
		}
		r.engines[c] = engine
	}

	return r, nil
}

// NormalizationScale returns the loudness calibration applied to ir:
// 0.00125·(44100/sampleRate)/rms, with rms taken over all channels and
// floored at 0.000125.
func NormalizationScale(ir *buffer.Buffer) float64 {
	if ir == nil || ir.Len() == 0 {
		return 1
	}

	var power float64
	for _, ch := range ir.Channels() {
		power += vecmath.DotProduct(ch, ch)
	}

	rms := math.Sqrt(power / float64(ir.NumChannels()*ir.Len()))
	if !core.IsFinite(rms) || rms < minPower {
		rms = minPower
	}

	scale := gainCalibration / rms
	if sr := ir.SampleRate(); sr > 0 {
		scale *= gainCalibrationSampleRate / sr
	}

	return scale
}

// ProcessChannel applies the reverb to channel c held in buf.
func (r *ConvolutionReverb) ProcessChannel(c int, buf []float64) error {
	if len(buf) == 0 || r.mix == 0 {
		return nil
	}
	if c < 0 {
		return fmt.Errorf("reverb: channel index must be >= 0: %d", c)
	}

	delayed := scratch.Get(len(buf))
	defer scratch.Put(delayed)
	wet := scratch.Get(len(buf))
	defer scratch.Put(wet)

	core.DelayInto(delayed, buf, r.preDelaySample)

	if err := r.engines[c%len(r.engines)].ProcessInto(wet, delayed); err != nil {
		return fmt.Errorf("reverb: channel %d: %w", c, err)
	}

	vecmath.ScaleBlockInPlace(buf, 1-r.mix)
	vecmath.ScaleBlockInPlace(wet, r.mix*r.scale)
	vecmath.AddBlockInPlace(buf, wet)

	return nil
}

// ProcessInPlace applies the reverb to a single channel using the first
// impulse channel.
func (r *ConvolutionReverb) ProcessInPlace(buf []float64) error {
	return r.ProcessChannel(0, buf)
}

// Process applies the reverb to every channel of b in place.
func (r *ConvolutionReverb) Process(b *buffer.Buffer) error {
	if b == nil {
		return nil
	}
	for c, ch := range b.Channels() {
		if err := r.ProcessChannel(c, ch); err != nil {
			return err
		}
	}
	return nil
}

// Mix returns the wet share.
func (r *ConvolutionReverb) Mix() float64 { return r.mix }

// PreDelay returns the pre-delay in seconds.
func (r *ConvolutionReverb) PreDelay() float64 { return r.preDelay }

// PreDelaySamples returns the pre-delay rounded to samples.
func (r *ConvolutionReverb) PreDelaySamples() int { return r.preDelaySample }

// Scale returns the impulse gain applied to the wet path.
func (r *ConvolutionReverb) Scale() float64 { return r.scale }

// SampleRate returns the impulse sample rate in Hz.
func (r *ConvolutionReverb) SampleRate() float64 { return r.sampleRate }
