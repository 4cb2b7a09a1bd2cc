package effectchain

import (
	"context"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/effects"
	"github.com/cwbudde/algo-fxrender/dsp/effects/reverb"
	"github.com/cwbudde/algo-fxrender/fx/settings"
)

type registryConfig struct {
	irProvider IRProvider
}

// RegistryOption configures the default registry.
type RegistryOption func(*registryConfig)

// WithIRProvider replaces the synthesized reverb impulse response.
func WithIRProvider(p IRProvider) RegistryOption {
	return func(c *registryConfig) { c.irProvider = p }
}

// SynthesizedIR builds the decaying-noise impulse from ctx.Rand.
var SynthesizedIR IRProvider = IRProviderFunc(func(ctx Context, duration, decay float64) (*buffer.Buffer, error) {
	return reverb.ImpulseResponse(ctx.SampleRate, duration, decay, ctx.Rand)
})

// DefaultRegistry returns a Registry with a factory for every stage.
func DefaultRegistry(opts ...RegistryOption) *Registry {
	cfg := &registryConfig{irProvider: SynthesizedIR}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.irProvider == nil {
		cfg.irProvider = SynthesizedIR
	}

	r := NewRegistry()

	r.MustRegister(settings.Distortion, func(ctx Context, s settings.EffectSettings) (Stage, error) {
		d := s.Distortion
		fx, err := effects.NewDistortion(ctx.SampleRate,
			effects.WithDistortionDrive(d.Drive),
			effects.WithDistortionCharacter(d.Character),
			effects.WithDistortionTone(d.Tone),
		)
		if err != nil {
			return nil, err
		}

		return PerChannel(fx), nil
	})
	r.MustRegister(settings.Equalizer, func(ctx Context, s settings.EffectSettings) (Stage, error) {
		fx, err := effects.NewEqualizer(ctx.SampleRate, effects.WithEqualizerGains(s.Equalizer.Gains()))
		if err != nil {
			return nil, err
		}

		return PerChannel(fx), nil
	})
	r.MustRegister(settings.LowPassFilter, func(ctx Context, s settings.EffectSettings) (Stage, error) {
		fx, err := effects.NewLowPass(ctx.SampleRate,
			effects.WithLowPassFrequency(s.LowPassFilter.Frequency),
			effects.WithLowPassQ(s.LowPassFilter.Q),
		)
		if err != nil {
			return nil, err
		}

		return PerChannel(fx), nil
	})
	r.MustRegister(settings.Pan, func(ctx Context, s settings.EffectSettings) (Stage, error) {
		opt := effects.WithPan(s.Pan.Pan)
		if s.Pan.IsAuto {
			opt = effects.WithAutoPan(s.Pan.Frequency, s.Pan.Depth)
		}

		fx, err := effects.NewPanner(ctx.SampleRate, opt)
		if err != nil {
			return nil, err
		}

		return WholeBuffer(fx), nil
	})
	r.MustRegister(settings.Tremolo, func(ctx Context, s settings.EffectSettings) (Stage, error) {
		fx, err := effects.NewTremolo(ctx.SampleRate,
			effects.WithTremoloRateHz(s.Tremolo.Frequency),
			effects.WithTremoloDepth(s.Tremolo.Depth),
		)
		if err != nil {
			return nil, err
		}

		return PerChannel(fx), nil
	})
	r.MustRegister(settings.Reverb, func(ctx Context, s settings.EffectSettings) (Stage, error) {
		rv := s.Reverb
		ir, err := cfg.irProvider.ImpulseResponse(ctx, rv.Duration, rv.Decay)
		if err != nil {
			return nil, err
		}

		fx, err := reverb.NewConvolutionReverb(ir,
			reverb.WithMix(rv.Mix),
			reverb.WithPreDelay(rv.PreDelay),
			reverb.WithNormalization(ctx.NormalizeIR),
		)
		if err != nil {
			return nil, err
		}

		return reverbStage{fx: fx}, nil
	})

	return r
}

type reverbStage struct {
	fx *reverb.ConvolutionReverb
}

func (s reverbStage) Process(ctx context.Context, b *buffer.Buffer) error {
	for c, ch := range b.Channels() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.fx.ProcessChannel(c, ch); err != nil {
			return err
		}
	}
	return nil
}
