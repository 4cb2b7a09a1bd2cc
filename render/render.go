package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/core"
	"github.com/cwbudde/algo-fxrender/dsp/effectchain"
	"github.com/cwbudde/algo-fxrender/dsp/resample"
	"github.com/cwbudde/algo-fxrender/fx/settings"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidDuration is returned when the output duration derived from
	// the source and playback rate is not a positive finite number.
	ErrInvalidDuration = errors.New("render: invalid output duration")
	// ErrNoSource is returned for a nil or channel-less source.
	ErrNoSource = errors.New("render: no source buffer")
)

// Render applies s to src and returns the processed buffer. The output
// has ceil(src.Len()/rate) samples per channel, where rate is the Speed
// rate when enabled and 1 otherwise. Settings are validated before any
// allocation. ctx is checked between stages and between channels; a
// cancelled render returns ctx.Err() and no buffer.
func Render(ctx context.Context, src *buffer.Buffer, s settings.EffectSettings, opts ...Option) (*buffer.Buffer, error) {
	if src == nil || src.NumChannels() == 0 {
		return nil, ErrNoSource
	}
	if err := settings.Validate(s); err != nil {
		return nil, err
	}

	rate := s.PlaybackRate()
	duration := src.Duration() / rate
	if !core.IsFinite(duration) || duration <= 0 {
		return nil, fmt.Errorf("%w: %g s", ErrInvalidDuration, duration)
	}

	cfg := newConfig(opts)
	log := cfg.logger.WithFields(logrus.Fields{
		"channels":    src.NumChannels(),
		"sample_rate": src.SampleRate(),
	})

	plan, err := cfg.registry.Build(effectchain.Context{
		SampleRate:  src.SampleRate(),
		Rand:        cfg.rng,
		NormalizeIR: cfg.normalizeIR,
	}, s)
	if err != nil {
		return nil, err
	}

	out := buffer.New(src.NumChannels(), resample.PlaybackLen(src.Len(), rate), src.SampleRate())

	start := time.Now()
	for c := range src.NumChannels() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := resample.PlaybackRate(out.Channel(c), src.Channel(c), rate); err != nil {
			return nil, fmt.Errorf("render: speed: %w", err)
		}
	}
	log.WithFields(logrus.Fields{
		"stage":   settings.Speed.String(),
		"rate":    rate,
		"samples": out.Len(),
		"elapsed": time.Since(start),
	}).Debug("resampled source")

	for _, step := range plan.Steps() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		if err := step.Stage.Process(ctx, out); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("render: %s: %w", step.ID.Key(), err)
		}

		log.WithFields(logrus.Fields{
			"stage":   step.ID.String(),
			"samples": out.Len(),
			"elapsed": time.Since(start),
		}).Debug("applied stage")
	}

	return out, nil
}
