package effectchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/fx/settings"
)

// ErrUnknownEffect is returned when an active effect has no registered factory.
var ErrUnknownEffect = errors.New("effectchain: unknown effect")

// Order is the fixed processing order of the stages. Speed is a rate
// transform applied before the chain and is not a stage.
var Order = [...]settings.EffectID{
	settings.Distortion,
	settings.Equalizer,
	settings.LowPassFilter,
	settings.Pan,
	settings.Tremolo,
	settings.Reverb,
}

// Active reports whether id contributes a stage for s. Distortion also
// needs a non-zero character, Tremolo a non-zero depth, and Reverb a
// non-zero mix.
func Active(s settings.EffectSettings, id settings.EffectID) bool {
	if id == settings.Speed || !s.Enabled(id) {
		return false
	}

	switch id {
	case settings.Distortion:
		return s.Distortion.Character > 0
	case settings.Tremolo:
		return s.Tremolo.Depth > 0
	case settings.Reverb:
		return s.Reverb.Mix > 0
	default:
		return true
	}
}

// Step is one built stage together with the effect it came from.
type Step struct {
	ID    settings.EffectID
	Stage Stage
}

// Plan is the ordered list of active stages for one render.
type Plan struct {
	steps []Step
}

// Build validates s and builds the active stages with the registry's
// factories, in Order.
func (r *Registry) Build(ctx Context, s settings.EffectSettings) (*Plan, error) {
	if err := settings.Validate(s); err != nil {
		return nil, err
	}

	p := &Plan{}
	for _, id := range Order {
		if !Active(s, id) {
			continue
		}

		factory := r.Lookup(id)
		if factory == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, id)
		}

		stage, err := factory(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("effectchain: build %s: %w", id.Key(), err)
		}

		p.steps = append(p.steps, Step{ID: id, Stage: stage})
	}

	return p, nil
}

// Build is Registry.Build on DefaultRegistry().
func Build(ctx Context, s settings.EffectSettings) (*Plan, error) {
	return DefaultRegistry().Build(ctx, s)
}

// Steps returns the stages in processing order.
func (p *Plan) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Len returns the number of active stages.
func (p *Plan) Len() int {
	return len(p.steps)
}

// Names lists the display names of the active stages in order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.steps))
	for i, st := range p.steps {
		names[i] = st.ID.String()
	}
	return names
}

// Process applies every stage to b in place, checking ctx between stages.
func (p *Plan) Process(ctx context.Context, b *buffer.Buffer) error {
	for _, st := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := st.Stage.Process(ctx, b); err != nil {
			return fmt.Errorf("effectchain: %s: %w", st.ID.Key(), err)
		}
	}
	return nil
}
