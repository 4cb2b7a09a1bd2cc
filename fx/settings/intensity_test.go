package settings

import (
	"errors"
	"math"
	"testing"
)

func nearly(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestNormalizeReverb(t *testing.T) {
	t.Parallel()

	zero, err := NormalizeReverb(Default().Reverb, 0)
	if err != nil {
		t.Fatalf("NormalizeReverb(0) error = %v", err)
	}
	if zero.Mix != 0 || zero.Duration != 0.1 || zero.Decay != 0.1 || zero.PreDelay != 0 {
		t.Fatalf("NormalizeReverb(0) = %+v", zero)
	}

	full, err := NormalizeReverb(Default().Reverb, 100)
	if err != nil {
		t.Fatalf("NormalizeReverb(100) error = %v", err)
	}
	if !nearly(full.Mix, 0.5) || !nearly(full.Duration, 4) || !nearly(full.Decay, 5) || !nearly(full.PreDelay, 0.1) {
		t.Fatalf("NormalizeReverb(100) = %+v", full)
	}
	if full.Intensity != 100 {
		t.Fatalf("Intensity = %v, want 100", full.Intensity)
	}
}

func TestNormalizeDistortionKeepsTone(t *testing.T) {
	t.Parallel()

	in := Default().Distortion
	in.Tone = 3000

	got, err := NormalizeDistortion(in, 50)
	if err != nil {
		t.Fatalf("NormalizeDistortion() error = %v", err)
	}
	if !nearly(got.Drive, 50.5) || !nearly(got.Character, 0.4) || got.Tone != 3000 {
		t.Fatalf("NormalizeDistortion(50) = %+v", got)
	}
}

func TestNormalizeLowPass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		intensity float64
		freq      float64
		q         float64
	}{
		{0, 20000, 1},
		{50, 2000, 3},
		{100, 200, 5},
	}

	for _, tc := range cases {
		got, err := NormalizeLowPass(Default().LowPassFilter, tc.intensity)
		if err != nil {
			t.Fatalf("NormalizeLowPass(%v) error = %v", tc.intensity, err)
		}
		if math.Abs(got.Frequency-tc.freq) > 1e-9 || !nearly(got.Q, tc.q) {
			t.Fatalf("NormalizeLowPass(%v) = %+v, want %v Hz Q %v", tc.intensity, got, tc.freq, tc.q)
		}
	}
}

func TestNormalizeTremolo(t *testing.T) {
	t.Parallel()

	got, err := NormalizeTremolo(Default().Tremolo, 25)
	if err != nil {
		t.Fatalf("NormalizeTremolo() error = %v", err)
	}
	if !nearly(got.Depth, 0.25) || !nearly(got.Frequency, 4) {
		t.Fatalf("NormalizeTremolo(25) = %+v", got)
	}
}

func TestWithIntensity(t *testing.T) {
	t.Parallel()

	base := Default()
	got, err := base.WithIntensity(Reverb, 40)
	if err != nil {
		t.Fatalf("WithIntensity() error = %v", err)
	}
	if base.Reverb.Intensity != 0 {
		t.Fatal("WithIntensity mutated the receiver")
	}
	if !nearly(got.Reverb.Mix, 0.2) || got.Reverb.Enabled {
		t.Fatalf("Reverb = %+v", got.Reverb)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	if _, err := base.WithIntensity(Pan, 10); !errors.Is(err, ErrNoIntensity) {
		t.Fatalf("WithIntensity(Pan) error = %v, want ErrNoIntensity", err)
	}
	if _, err := base.WithIntensity(Tremolo, 101); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("WithIntensity(101) error = %v, want ErrOutOfRange", err)
	}
	if _, err := base.WithIntensity(Distortion, math.NaN()); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("WithIntensity(NaN) error = %v, want ErrOutOfRange", err)
	}
}
