package settings

import "fmt"

// EffectID identifies one effect record.
type EffectID int

const (
	Speed EffectID = iota
	Distortion
	Equalizer
	LowPassFilter
	Pan
	Tremolo
	Reverb
)

var effectNames = [...]string{
	Speed:         "Speed",
	Distortion:    "Distortion",
	Equalizer:     "Equalizer",
	LowPassFilter: "Low Pass Filter",
	Pan:           "Pan",
	Tremolo:       "Tremolo",
	Reverb:        "Reverb",
}

var effectKeys = [...]string{
	Speed:         "speed",
	Distortion:    "distortion",
	Equalizer:     "equalizer",
	LowPassFilter: "lowpass",
	Pan:           "pan",
	Tremolo:       "tremolo",
	Reverb:        "reverb",
}

// Effects lists every identifier, Speed first.
func Effects() []EffectID {
	return []EffectID{Speed, Distortion, Equalizer, LowPassFilter, Pan, Tremolo, Reverb}
}

// String returns the display name, e.g. "Low Pass Filter".
func (id EffectID) String() string {
	if id < 0 || int(id) >= len(effectNames) {
		return fmt.Sprintf("EffectID(%d)", int(id))
	}
	return effectNames[id]
}

// Key returns the short lowercase name used in error messages and flags.
func (id EffectID) Key() string {
	if id < 0 || int(id) >= len(effectKeys) {
		return fmt.Sprintf("effect%d", int(id))
	}
	return effectKeys[id]
}

// ParseEffectID resolves a display name or key.
func ParseEffectID(s string) (EffectID, error) {
	for _, id := range Effects() {
		if s == id.String() || s == id.Key() {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, s)
}

// ReverbSettings configures the convolution reverb.
type ReverbSettings struct {
	Mix       float64 `json:"mix"`
	Decay     float64 `json:"decay"`
	Duration  float64 `json:"duration"`
	PreDelay  float64 `json:"preDelay"`
	Intensity float64 `json:"intensity"`
	Enabled   bool    `json:"enabled"`
}

// SpeedSettings configures the playback-rate transform.
type SpeedSettings struct {
	Rate    float64 `json:"rate"`
	Enabled bool    `json:"enabled"`
}

// EqualizerSettings holds the seven band gains in dB.
type EqualizerSettings struct {
	Band80  float64 `json:"band80"`
	Band250 float64 `json:"band250"`
	Band500 float64 `json:"band500"`
	Band1k  float64 `json:"band1k"`
	Band2k5 float64 `json:"band2k5"`
	Band5k  float64 `json:"band5k"`
	Band10k float64 `json:"band10k"`
	Enabled bool    `json:"enabled"`
}

// Gains returns the band gains from lowest to highest band.
func (e EqualizerSettings) Gains() [7]float64 {
	return [7]float64{e.Band80, e.Band250, e.Band500, e.Band1k, e.Band2k5, e.Band5k, e.Band10k}
}

// DistortionSettings configures the waveshaping distortion.
type DistortionSettings struct {
	Drive     float64 `json:"drive"`
	Character float64 `json:"character"`
	Tone      float64 `json:"tone"`
	Intensity float64 `json:"intensity"`
	Enabled   bool    `json:"enabled"`
}

// PanSettings configures the stereo panner.
type PanSettings struct {
	Pan       float64 `json:"pan"`
	IsAuto    bool    `json:"isAuto"`
	Frequency float64 `json:"frequency"`
	Depth     float64 `json:"depth"`
	Enabled   bool    `json:"enabled"`
}

// TremoloSettings configures the amplitude modulator.
type TremoloSettings struct {
	Frequency float64 `json:"frequency"`
	Depth     float64 `json:"depth"`
	Intensity float64 `json:"intensity"`
	Enabled   bool    `json:"enabled"`
}

// LowPassFilterSettings configures the resonant low-pass.
type LowPassFilterSettings struct {
	Frequency float64 `json:"frequency"`
	Q         float64 `json:"q"`
	Intensity float64 `json:"intensity"`
	Enabled   bool    `json:"enabled"`
}

// EffectSettings holds one record per effect.
type EffectSettings struct {
	Speed         SpeedSettings
	Distortion    DistortionSettings
	Equalizer     EqualizerSettings
	LowPassFilter LowPassFilterSettings
	Pan           PanSettings
	Tremolo       TremoloSettings
	Reverb        ReverbSettings
}

// Default returns the initial settings with every effect disabled.
func Default() EffectSettings {
	return EffectSettings{
		Speed:         SpeedSettings{Rate: 1},
		Distortion:    DistortionSettings{Drive: 1, Character: 0, Tone: 8000},
		LowPassFilter: LowPassFilterSettings{Frequency: 20000, Q: 1},
		Pan:           PanSettings{Pan: 0, IsAuto: false, Frequency: 2, Depth: 1},
		Tremolo:       TremoloSettings{Frequency: 5, Depth: 0},
		Reverb:        ReverbSettings{Mix: 0, Decay: 1.5, Duration: 2, PreDelay: 0},
	}
}

// Enabled reports whether the record for id is switched on.
func (s EffectSettings) Enabled(id EffectID) bool {
	switch id {
	case Speed:
		return s.Speed.Enabled
	case Distortion:
		return s.Distortion.Enabled
	case Equalizer:
		return s.Equalizer.Enabled
	case LowPassFilter:
		return s.LowPassFilter.Enabled
	case Pan:
		return s.Pan.Enabled
	case Tremolo:
		return s.Tremolo.Enabled
	case Reverb:
		return s.Reverb.Enabled
	default:
		return false
	}
}

// WithEnabled returns a copy with the record for id switched on or off.
func (s EffectSettings) WithEnabled(id EffectID, enabled bool) EffectSettings {
	switch id {
	case Speed:
		s.Speed.Enabled = enabled
	case Distortion:
		s.Distortion.Enabled = enabled
	case Equalizer:
		s.Equalizer.Enabled = enabled
	case LowPassFilter:
		s.LowPassFilter.Enabled = enabled
	case Pan:
		s.Pan.Enabled = enabled
	case Tremolo:
		s.Tremolo.Enabled = enabled
	case Reverb:
		s.Reverb.Enabled = enabled
	}
	return s
}

// PlaybackRate returns the effective speed: Speed.Rate when enabled, else 1.
func (s EffectSettings) PlaybackRate() float64 {
	if s.Speed.Enabled {
		return s.Speed.Rate
	}
	return 1
}
