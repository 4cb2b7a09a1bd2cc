package render

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/fx/settings"
	"github.com/cwbudde/algo-fxrender/internal/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const sr = 44100.0

func stereoSource(t testing.TB, n int) *buffer.Buffer {
	t.Helper()
	return testutil.NewBuffer(t, sr,
		testutil.DeterministicNoise(1, 0.5, n),
		testutil.DeterministicNoise(2, 0.5, n),
	)
}

func TestRenderDisabledIsIdentity(t *testing.T) {
	t.Parallel()

	src := stereoSource(t, 4096)
	orig := src.Clone()

	out, err := Render(context.Background(), src, settings.Default(), WithSeed(1))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	testutil.RequireBufferNearlyEqual(t, out, orig, 0)
	testutil.RequireBufferNearlyEqual(t, src, orig, 0)
	if &out.Channel(0)[0] == &src.Channel(0)[0] {
		t.Fatal("Render returned the source storage")
	}
}

func TestRenderNeutralStages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*settings.EffectSettings)
	}{
		{"equalizer at 0 dB", func(s *settings.EffectSettings) { s.Equalizer.Enabled = true }},
		{"distortion at character 0", func(s *settings.EffectSettings) { s.Distortion.Enabled = true; s.Distortion.Drive = 50 }},
		{"reverb at mix 0", func(s *settings.EffectSettings) { s.Reverb.Enabled = true }},
		{"tremolo at depth 0", func(s *settings.EffectSettings) { s.Tremolo.Enabled = true }},
		{"pan centered", func(s *settings.EffectSettings) { s.Pan.Enabled = true }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := stereoSource(t, 2048)
			s := settings.Default()
			tc.mutate(&s)

			out, err := Render(context.Background(), src, s)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			testutil.RequireBufferNearlyEqual(t, out, src, 1e-12)
		})
	}
}

func TestRenderSpeedScalesLength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rate float64
		n    int
		want int
	}{
		{2, 44100, 22050},
		{0.5, 1000, 2000},
		{0.85, 1000, 1177},
		{4, 10, 3},
	}

	for _, tc := range cases {
		src := testutil.NewBuffer(t, sr, testutil.DeterministicSine(440, sr, 0.5, tc.n))
		s := settings.Default().WithEnabled(settings.Speed, true)
		s.Speed.Rate = tc.rate

		out, err := Render(context.Background(), src, s)
		if err != nil {
			t.Fatalf("rate %v: Render() error = %v", tc.rate, err)
		}
		if out.Len() != tc.want {
			t.Fatalf("rate %v: Len() = %d, want %d", tc.rate, out.Len(), tc.want)
		}
		if out.NumChannels() != 1 || out.SampleRate() != sr {
			t.Fatalf("rate %v: shape = %d ch @ %v", tc.rate, out.NumChannels(), out.SampleRate())
		}
	}
}

func TestRenderSpeedDisabledIgnoresRate(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.Speed.Rate = 2

	out, err := Render(context.Background(), stereoSource(t, 100), s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", out.Len())
	}
}

func TestRenderTremoloOnDC(t *testing.T) {
	t.Parallel()

	s := settings.Default().WithEnabled(settings.Tremolo, true)
	s.Tremolo.Depth = 1
	s.Tremolo.Frequency = 5

	src := testutil.NewBuffer(t, sr, testutil.DC(1, int(sr)))
	out, err := Render(context.Background(), src, s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	y := out.Channel(0)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range y {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo < -1e-12 || lo > 1e-6 || hi < 1-1e-6 || hi > 1+1e-12 {
		t.Fatalf("range = [%v, %v], want [0, 1]", lo, hi)
	}
	if got := testutil.ToneAmplitude(y, 5, sr); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("5 Hz amplitude = %v, want 0.5", got)
	}
}

func TestRenderPanExtremes(t *testing.T) {
	t.Parallel()

	for _, pan := range []float64{-1, 1} {
		s := settings.Default().WithEnabled(settings.Pan, true)
		s.Pan.Pan = pan

		out, err := Render(context.Background(), stereoSource(t, 512), s)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		silent := out.Channel(1)
		if pan > 0 {
			silent = out.Channel(0)
		}
		for i, v := range silent {
			if math.Abs(v) > 1e-12 {
				t.Fatalf("pan %v: sample %d = %v, want ~0", pan, i, v)
			}
		}
	}
}

func TestRenderReverbSeeded(t *testing.T) {
	t.Parallel()

	s := settings.Default().WithEnabled(settings.Reverb, true)
	s.Reverb.Mix = 0.5
	s.Reverb.Duration = 0.2

	src := stereoSource(t, 8192)
	a, err := Render(context.Background(), src, s, WithSeed(7))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, err := Render(context.Background(), src, s, WithSeed(7))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	c, err := Render(context.Background(), src, s, WithSeed(8))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	testutil.RequireBufferNearlyEqual(t, a, b, 0)
	if diff, _ := testutil.MaxAbsDiff(a.Channel(0), c.Channel(0)); diff == 0 {
		t.Fatal("different seeds produced identical output")
	}
	if a.Len() != src.Len() {
		t.Fatalf("Len() = %d, want %d", a.Len(), src.Len())
	}
}

func TestRenderIRNormalizationToggle(t *testing.T) {
	t.Parallel()

	s := settings.Default().WithEnabled(settings.Reverb, true)
	s.Reverb.Mix = 1
	s.Reverb.Duration = 0.1

	src := testutil.NewBuffer(t, sr, testutil.Impulse(1024, 0))
	norm, err := Render(context.Background(), src, s, WithSeed(1))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	raw, err := Render(context.Background(), src, s, WithSeed(1), WithIRNormalization(false))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if math.Abs(norm.Channel(0)[0]) >= math.Abs(raw.Channel(0)[0]) {
		t.Fatalf("normalized %v not quieter than raw %v", norm.Channel(0)[0], raw.Channel(0)[0])
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	if _, err := Render(context.Background(), nil, settings.Default()); !errors.Is(err, ErrNoSource) {
		t.Fatalf("nil source error = %v, want ErrNoSource", err)
	}

	empty := testutil.NewBuffer(t, sr, []float64{})
	if _, err := Render(context.Background(), empty, settings.Default()); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("empty source error = %v, want ErrInvalidDuration", err)
	}

	bad := settings.Default()
	bad.Reverb.Mix = 1.5
	if _, err := Render(context.Background(), stereoSource(t, 16), bad); !errors.Is(err, settings.ErrOutOfRange) {
		t.Fatalf("invalid settings error = %v, want ErrOutOfRange", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := settings.Default().WithEnabled(settings.Equalizer, true)
	out, err := Render(ctx, stereoSource(t, 256), s)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want context.Canceled", err)
	}
	if out != nil {
		t.Fatal("cancelled render returned a buffer")
	}
}

func TestRenderLogsStages(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s := settings.Default().
		WithEnabled(settings.Equalizer, true).
		WithEnabled(settings.LowPassFilter, true)

	if _, err := Render(context.Background(), stereoSource(t, 256), s, WithLogger(logger)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var stages []string
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.DebugLevel {
			t.Fatalf("entry level = %v, want debug", e.Level)
		}
		stages = append(stages, e.Data["stage"].(string))
	}

	want := []string{"Speed", "Equalizer", "Low Pass Filter"}
	if len(stages) != len(want) {
		t.Fatalf("logged stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("logged stages = %v, want %v", stages, want)
		}
	}
}
