package reverb

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/core"
	"github.com/cwbudde/algo-fxrender/dsp/signal"
)

// ErrEmptyImpulse is returned when an impulse response has no samples.
var ErrEmptyImpulse = errors.New("reverb: empty impulse response")

// ImpulseResponse synthesizes a stereo impulse response of
// round(sampleRate·duration) samples. Sample i of each channel is uniform
// noise in [-1, 1) scaled by ((length-i)/length)^decay. Left and right
// values are drawn alternately from rng, so a seeded rng yields a
// reproducible response. A nil rng uses a generator seeded with 1.
func ImpulseResponse(sampleRate, duration, decay float64, rng *rand.Rand) (*buffer.Buffer, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("reverb: impulse sample rate must be > 0: %f", sampleRate)
	}
	if !core.IsFinite(duration) || duration <= 0 {
		return nil, fmt.Errorf("reverb: impulse duration must be > 0: %f", duration)
	}
	if !core.IsFinite(decay) || decay < 0 {
		return nil, fmt.Errorf("reverb: impulse decay must be >= 0: %f", decay)
	}

	length := core.SecondsToSamples(duration, sampleRate)
	if length == 0 {
		return nil, fmt.Errorf("%w: %f s at %f Hz", ErrEmptyImpulse, duration, sampleRate)
	}

	gen, err := signal.NewGenerator(sampleRate, signal.WithRand(rng))
	if err != nil {
		return nil, err
	}

	noise, err := gen.WhiteNoise(1, 2*length)
	if err != nil {
		return nil, err
	}

	ir := buffer.New(2, length, sampleRate)
	left, right := ir.Channel(0), ir.Channel(1)
	n := float64(length)
	for i := range length {
		env := math.Pow((n-float64(i))/n, decay)
		left[i] = noise[2*i] * env
		right[i] = noise[2*i+1] * env
	}

	return ir, nil
}
