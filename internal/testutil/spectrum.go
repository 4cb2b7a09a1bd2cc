package testutil

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// ToneAmplitude estimates the amplitude of the sinusoid at freqHz in x
// from the nearest DFT bin. It is exact when x holds a whole number of
// periods of the tone.
func ToneAmplitude(x []float64, freqHz, sampleRate float64) float64 {
	if len(x) == 0 {
		return 0
	}

	spec := fft.FFTReal(x)
	bin := int(math.Round(freqHz * float64(len(x)) / sampleRate))
	if bin < 0 || bin >= len(spec) {
		return 0
	}

	scale := 2 / float64(len(x))
	if bin == 0 {
		scale = 1 / float64(len(x))
	}

	return cmplx.Abs(spec[bin]) * scale
}

// RMS returns the root-mean-square level of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(x)))
}
