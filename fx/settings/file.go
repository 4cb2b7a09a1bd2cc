package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
)

// Version is the document version written by Save.
const Version = "1.0.0"

// supportedVersions is the range of document versions Load accepts.
const supportedVersions = "^1.0.0"

// ErrVersion is returned when a document's version is missing or
// outside the supported range.
var ErrVersion = errors.New("settings: unsupported document version")

type document struct {
	Version string                     `json:"version"`
	Preset  string                     `json:"preset,omitempty"`
	Effects map[string]json.RawMessage `json:"effects"`
}

// Load reads a settings document. The base is the named preset when the
// document sets one, otherwise Default; each record present under
// "effects" is overlaid field by field. The result is validated.
func Load(r io.Reader) (EffectSettings, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return EffectSettings{}, fmt.Errorf("settings: decode: %w", err)
	}

	if err := checkVersion(doc.Version); err != nil {
		return EffectSettings{}, err
	}

	s := Default()
	if doc.Preset != "" {
		p, err := Preset(doc.Preset)
		if err != nil {
			return EffectSettings{}, err
		}
		s = p
	}

	for name, raw := range doc.Effects {
		id, err := ParseEffectID(name)
		if err != nil {
			return EffectSettings{}, err
		}
		if err := s.overlay(id, raw); err != nil {
			return EffectSettings{}, fmt.Errorf("settings: %s: %w", name, err)
		}
	}

	if err := Validate(s); err != nil {
		return EffectSettings{}, err
	}

	return s, nil
}

// LoadFile reads a settings document from path.
func LoadFile(path string) (EffectSettings, error) {
	f, err := os.Open(path)
	if err != nil {
		return EffectSettings{}, err
	}
	defer f.Close()

	return Load(f)
}

// Save writes s as an indented document keyed by display name.
func Save(w io.Writer, s EffectSettings) error {
	if err := Validate(s); err != nil {
		return err
	}

	doc := document{
		Version: Version,
		Effects: make(map[string]json.RawMessage, len(Effects())),
	}
	for _, id := range Effects() {
		raw, err := json.Marshal(s.record(id))
		if err != nil {
			return fmt.Errorf("settings: encode %s: %w", id, err)
		}
		doc.Effects[id.String()] = raw
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// SaveFile writes s to path, replacing any existing file.
func SaveFile(path string, s EffectSettings) error {
	var buf bytes.Buffer
	if err := Save(&buf, s); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: missing version", ErrVersion)
	}

	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrVersion, v, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrVersion, version, supportedVersions)
	}

	return nil
}

func (s *EffectSettings) record(id EffectID) any {
	switch id {
	case Speed:
		return &s.Speed
	case Distortion:
		return &s.Distortion
	case Equalizer:
		return &s.Equalizer
	case LowPassFilter:
		return &s.LowPassFilter
	case Pan:
		return &s.Pan
	case Tremolo:
		return &s.Tremolo
	case Reverb:
		return &s.Reverb
	default:
		return nil
	}
}

func (s *EffectSettings) overlay(id EffectID, raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(s.record(id))
}
