package effectchain

import (
	"math/rand"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
)

// Context provides environmental information that stage factories need.
type Context struct {
	SampleRate float64

	// Rand drives impulse-response noise. Nil uses a fixed seed.
	Rand *rand.Rand

	// NormalizeIR enables reverb impulse loudness calibration.
	NormalizeIR bool
}

// IRProvider supplies the reverb impulse response for a render.
type IRProvider interface {
	ImpulseResponse(ctx Context, duration, decay float64) (*buffer.Buffer, error)
}

// IRProviderFunc adapts a function to IRProvider.
type IRProviderFunc func(ctx Context, duration, decay float64) (*buffer.Buffer, error)

// ImpulseResponse calls f.
func (f IRProviderFunc) ImpulseResponse(ctx Context, duration, decay float64) (*buffer.Buffer, error) {
	return f(ctx, duration, decay)
}
