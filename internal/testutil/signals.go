package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates length samples rising linearly from -1 towards 1.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = 2*float64(i)/float64(length) - 1
	}
	return out
}

// NewBuffer wraps channels in a buffer.Buffer and fails t on error.
func NewBuffer(t testing.TB, sampleRate float64, channels ...[]float64) *buffer.Buffer {
	t.Helper()

	b, err := buffer.FromChannels(sampleRate, channels...)
	if err != nil {
		t.Fatalf("buffer.FromChannels: %v", err)
	}

	return b
}
