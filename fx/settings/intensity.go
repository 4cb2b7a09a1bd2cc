package settings

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxrender/dsp/core"
)

// ErrNoIntensity is returned by WithIntensity for effects that have no
// intensity mapping.
var ErrNoIntensity = errors.New("settings: effect has no intensity control")

func checkIntensity(i float64) error {
	if !core.InRange(i, 0, 100) {
		return fmt.Errorf("%w: intensity = %g, want [0, 100]", ErrOutOfRange, i)
	}
	return nil
}

// NormalizeReverb derives mix, duration, decay, and pre-delay from
// intensity i in [0, 100].
func NormalizeReverb(r ReverbSettings, i float64) (ReverbSettings, error) {
	if err := checkIntensity(i); err != nil {
		return r, err
	}

	f := i / 100
	r.Intensity = i
	r.Mix, r.Duration, r.Decay = 0, 0.1, 0.1
	if i > 0 {
		r.Mix = f * 0.5
		r.Duration = 0.1 + f*3.9
		r.Decay = 0.1 + f*4.9
	}
	r.PreDelay = f * 0.1

	return r, nil
}

// NormalizeDistortion derives drive and character from intensity. The
// tone is left as is.
func NormalizeDistortion(d DistortionSettings, i float64) (DistortionSettings, error) {
	if err := checkIntensity(i); err != nil {
		return d, err
	}

	f := i / 100
	d.Intensity = i
	d.Drive = 1 + f*99
	d.Character = f * 0.8

	return d, nil
}

// NormalizeLowPass sweeps the corner logarithmically from 20 kHz down to
// 20 Hz and raises Q from 1 to 5.
func NormalizeLowPass(l LowPassFilterSettings, i float64) (LowPassFilterSettings, error) {
	if err := checkIntensity(i); err != nil {
		return l, err
	}

	f := i / 100
	l.Intensity = i
	l.Frequency = core.Clamp(20000/math.Pow(10, 2*f), 20, 20000)
	l.Q = 1 + f*4

	return l, nil
}

// NormalizeTremolo derives depth and a 2..10 Hz rate from intensity.
func NormalizeTremolo(t TremoloSettings, i float64) (TremoloSettings, error) {
	if err := checkIntensity(i); err != nil {
		return t, err
	}

	f := i / 100
	t.Intensity = i
	t.Depth = f
	t.Frequency = 2 + f*8

	return t, nil
}

// WithIntensity returns a copy with the record for id derived from
// intensity i. Only Reverb, Distortion, LowPassFilter, and Tremolo have an
// intensity mapping. Enabled flags are not touched.
func (s EffectSettings) WithIntensity(id EffectID, i float64) (EffectSettings, error) {
	var err error
	switch id {
	case Reverb:
		s.Reverb, err = NormalizeReverb(s.Reverb, i)
	case Distortion:
		s.Distortion, err = NormalizeDistortion(s.Distortion, i)
	case LowPassFilter:
		s.LowPassFilter, err = NormalizeLowPass(s.LowPassFilter, i)
	case Tremolo:
		s.Tremolo, err = NormalizeTremolo(s.Tremolo, i)
	default:
		return s, fmt.Errorf("%w: %s", ErrNoIntensity, id)
	}
	if err != nil {
		return s, fmt.Errorf("settings: %s: %w", id.Key(), err)
	}
	return s, nil
}
