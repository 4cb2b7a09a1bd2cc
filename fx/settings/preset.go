package settings

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by Preset for an unrecognized name.
var ErrUnknownPreset = errors.New("settings: unknown preset")

type preset struct {
	name    string
	overlay func(*EffectSettings)
}

var presets = []preset{
	{
		name:    "Reset to Default",
		overlay: func(*EffectSettings) {},
	},
	{
		name: "Bass Boosted (Medium)",
		overlay: func(s *EffectSettings) {
			s.Equalizer = EqualizerSettings{
				Band80: 6, Band250: 7, Band500: -3, Band1k: 0,
				Band2k5: 3, Band5k: 2, Band10k: -1,
				Enabled: true,
			}
		},
	},
	{
		name: "Slowed & Reverb",
		overlay: func(s *EffectSettings) {
			s.Speed = SpeedSettings{Rate: 0.85, Enabled: true}
			s.Reverb = ReverbSettings{
				Mix: 0.15, Decay: 1.57, Duration: 1.27, PreDelay: 0.03,
				Intensity: 30, Enabled: true,
			}
		},
	},
}

// PresetNames lists the built-in presets in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Preset returns the named preset applied on top of Default.
func Preset(name string) (EffectSettings, error) {
	for _, p := range presets {
		if p.name == name {
			s := Default()
			p.overlay(&s)
			return s, nil
		}
	}
	return EffectSettings{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
