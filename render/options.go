package render

import (
	"io"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-fxrender/dsp/effectchain"
	"github.com/sirupsen/logrus"
)

// Option configures a render.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	logger      logrus.FieldLogger
	normalizeIR bool
	registry    *effectchain.Registry
}

func newConfig(opts []Option) config {
	cfg := config{normalizeIR: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.logger = l
	}
	if cfg.registry == nil {
		cfg.registry = effectchain.DefaultRegistry()
	}

	return cfg
}

// WithSeed makes reverb noise reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand draws reverb noise from r. r must not be shared with a
// concurrent render.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithLogger routes per-stage debug entries to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) { c.logger = l }
}

// WithIRNormalization toggles reverb impulse loudness calibration. It is
// on by default.
func WithIRNormalization(enabled bool) Option {
	return func(c *config) { c.normalizeIR = enabled }
}

// WithRegistry builds stages from r instead of the default registry.
func WithRegistry(r *effectchain.Registry) Option {
	return func(c *config) { c.registry = r }
}
