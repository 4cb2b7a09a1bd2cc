package effectchain

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fxrender/fx/settings"
)

// Factory builds one Stage from the settings of a render.
type Factory func(ctx Context, s settings.EffectSettings) (Stage, error)

// Registry maps effect identifiers to their factories.
type Registry struct {
	factories map[settings.EffectID]Factory
}

var errDuplicateEffect = errors.New("duplicate effect")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[settings.EffectID]Factory)}
}

// Register adds a factory for the given effect.
func (r *Registry) Register(id settings.EffectID, factory Factory) error {
	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, id)
	}

	r.factories[id] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(id settings.EffectID, factory Factory) {
	err := r.Register(id, factory)
	if err != nil {
		panic("effectchain registry: " + err.Error())
	}
}

// Lookup returns the factory for the given effect, or nil.
func (r *Registry) Lookup(id settings.EffectID) Factory {
	return r.factories[id]
}
