package effectchain

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fxrender/fx/settings"
)

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers and looks up factory", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()

		err := r.Register(settings.Tremolo, dummyFactory)
		if err != nil {
			t.Fatalf("Register returned unexpected error: %v", err)
		}

		if r.Lookup(settings.Tremolo) == nil {
			t.Fatal("Lookup returned nil for registered effect")
		}
	})

	t.Run("rejects nil factory", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()

		if err := r.Register(settings.Tremolo, nil); err == nil {
			t.Fatal("expected error for nil factory")
		}
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		_ = r.Register(settings.Pan, dummyFactory)

		err := r.Register(settings.Pan, dummyFactory)
		if !errors.Is(err, errDuplicateEffect) {
			t.Errorf("expected errDuplicateEffect, got: %v", err)
		}
	})
}

func TestRegistryLookupUnknown(t *testing.T) {
	t.Parallel()

	if f := NewRegistry().Lookup(settings.Reverb); f != nil {
		t.Fatal("expected nil for unregistered effect")
	}
}

func TestRegistryMustRegister(t *testing.T) {
	t.Parallel()

	t.Run("succeeds for valid registration", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.MustRegister(settings.Reverb, dummyFactory)

		if r.Lookup(settings.Reverb) == nil {
			t.Fatal("expected factory after MustRegister")
		}
	})

	t.Run("panics on duplicate", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.MustRegister(settings.Reverb, dummyFactory)

		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic on duplicate MustRegister")
			}
		}()

		r.MustRegister(settings.Reverb, dummyFactory)
	})
}
