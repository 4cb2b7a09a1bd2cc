package settings

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fxrender/dsp/core"
)

var (
	// ErrOutOfRange is wrapped by every Validate failure.
	ErrOutOfRange = errors.New("settings: value out of range")
	// ErrUnknownEffect is returned for an unrecognized effect name.
	ErrUnknownEffect = errors.New("settings: unknown effect")
)

type bound struct {
	field  string
	value  float64
	lo, hi float64
}

// Validate checks every field of every record, enabled or not, and
// returns all violations joined. NaN and infinities are out of range.
func Validate(s EffectSettings) error {
	var errs []error
	for _, b := range s.bounds() {
		if !core.InRange(b.value, b.lo, b.hi) {
			errs = append(errs, fmt.Errorf("%w: %s = %g, want [%g, %g]", ErrOutOfRange, b.field, b.value, b.lo, b.hi))
		}
	}
	return errors.Join(errs...)
}

// Validate is shorthand for Validate(s).
func (s EffectSettings) Validate() error {
	return Validate(s)
}

func (s EffectSettings) bounds() []bound {
	eq := s.Equalizer.Gains()
	eqNames := [7]string{"band80", "band250", "band500", "band1k", "band2k5", "band5k", "band10k"}

	out := []bound{
		{"speed.rate", s.Speed.Rate, 0.25, 4},

		{"distortion.drive", s.Distortion.Drive, 1, 100},
		{"distortion.character", s.Distortion.Character, 0, 1},
		{"distortion.tone", s.Distortion.Tone, 200, 10000},
		{"distortion.intensity", s.Distortion.Intensity, 0, 100},

		{"lowpass.frequency", s.LowPassFilter.Frequency, 20, 20000},
		{"lowpass.q", s.LowPassFilter.Q, 0.1, 20},
		{"lowpass.intensity", s.LowPassFilter.Intensity, 0, 100},

		{"pan.pan", s.Pan.Pan, -1, 1},
		{"pan.frequency", s.Pan.Frequency, 0.1, 10},
		{"pan.depth", s.Pan.Depth, 0, 1},

		{"tremolo.frequency", s.Tremolo.Frequency, 0.1, 20},
		{"tremolo.depth", s.Tremolo.Depth, 0, 1},
		{"tremolo.intensity", s.Tremolo.Intensity, 0, 100},

		{"reverb.mix", s.Reverb.Mix, 0, 1},
		{"reverb.decay", s.Reverb.Decay, 0.1, 10},
		{"reverb.duration", s.Reverb.Duration, 0.1, 10},
		{"reverb.preDelay", s.Reverb.PreDelay, 0, 1},
		{"reverb.intensity", s.Reverb.Intensity, 0, 100},
	}
	for i, g := range eq {
		out = append(out, bound{"equalizer." + eqNames[i], g, -30, 30})
	}

	return out
}
