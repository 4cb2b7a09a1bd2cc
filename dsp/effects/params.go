package effects

import (
	"fmt"

	"github.com/cwbudde/algo-fxrender/dsp/core"
)

func checkSampleRate(effect string, sampleRate float64) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0 and finite: %f", effect, sampleRate)
	}
	return nil
}

func checkRange(effect, param string, v, lo, hi float64) error {
	if !core.InRange(v, lo, hi) {
		return fmt.Errorf("%s %s must be in [%g, %g]: %f", effect, param, lo, hi, v)
	}
	return nil
}

func checkPositive(effect, param string, v float64) error {
	if !core.IsFinite(v) || v <= 0 {
		return fmt.Errorf("%s %s must be > 0 and finite: %f", effect, param, v)
	}
	return nil
}
