package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fxrender/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, freq, sampleRate float64) float64 {
	return math.Sqrt(c.MagnitudeSquared(freq, sampleRate))
}

func magDB(c biquad.Coefficients, freq, sampleRate float64) float64 {
	return c.MagnitudeDB(freq, sampleRate)
}

func TestLowpassShape(t *testing.T) {
	sr := 48000.0
	lp := Lowpass(1000, ShelfQ, sr)

	if !almostEqual(mag(lp, 0, sr), 1, 1e-9) {
		t.Fatalf("DC gain = %v, want 1", mag(lp, 0, sr))
	}

	if got := magDB(lp, 1000, sr); !almostEqual(got, -3.0103, 0.01) {
		t.Fatalf("corner gain = %v dB, want about -3.01", got)
	}

	if !(mag(lp, 100, sr) > mag(lp, 10000, sr)) {
		t.Fatal("lowpass shape check failed")
	}
}

func TestLowpassResonance(t *testing.T) {
	sr := 44100.0
	lp := Lowpass(2000, 5, sr)

	// RBJ lowpass gain at the corner equals Q.
	if got := mag(lp, 2000, sr); !almostEqual(got, 5, 1e-6) {
		t.Fatalf("corner gain = %v, want 5", got)
	}
}

func TestPeakGainAtCenter(t *testing.T) {
	sr := 44100.0
	for _, g := range []float64{-30, -6, 3, 12, 30} {
		c := Peak(1000, g, 1.2, sr)
		if got := magDB(c, 1000, sr); !almostEqual(got, g, 1e-6) {
			t.Fatalf("Peak(%v dB) center = %v dB", g, got)
		}
		if got := magDB(c, 0, sr); !almostEqual(got, 0, 1e-6) {
			t.Fatalf("Peak(%v dB) DC = %v dB, want 0", g, got)
		}
	}
}

func TestShelfTilt(t *testing.T) {
	sr := 44100.0

	ls := LowShelfFilter(80, 6, sr)
	if got := magDB(ls, 0, sr); !almostEqual(got, 6, 1e-6) {
		t.Fatalf("low shelf DC = %v dB, want 6", got)
	}
	if got := magDB(ls, 15000, sr); !almostEqual(got, 0, 0.05) {
		t.Fatalf("low shelf HF = %v dB, want about 0", got)
	}
	if got := magDB(ls, 80, sr); !almostEqual(got, 3, 0.01) {
		t.Fatalf("low shelf corner = %v dB, want 3", got)
	}

	hs := HighShelfFilter(10000, -6, sr)
	if got := magDB(hs, sr/2, sr); !almostEqual(got, -6, 1e-6) {
		t.Fatalf("high shelf Nyquist = %v dB, want -6", got)
	}
	if got := magDB(hs, 20, sr); !almostEqual(got, 0, 0.01) {
		t.Fatalf("high shelf LF = %v dB, want about 0", got)
	}
}

func TestZeroGainIsFlat(t *testing.T) {
	sr := 44100.0
	designs := []biquad.Coefficients{
		LowShelfFilter(80, 0, sr),
		Peak(250, 0, 1.2, sr),
		Peak(5000, 0, 1.2, sr),
		HighShelfFilter(10000, 0, sr),
	}

	for i, c := range designs {
		for _, f := range []float64{0, 20, 100, 1000, 8000, 20000} {
			if got := mag(c, f, sr); !almostEqual(got, 1, 1e-9) {
				t.Fatalf("design %d at %v Hz = %v, want 1", i, f, got)
			}
		}
	}
}

func TestEdgeFrequencies(t *testing.T) {
	sr := 16000.0
	a2 := math.Pow(10, 6.0/20)

	tests := []struct {
		name string
		c    biquad.Coefficients
		want biquad.Coefficients
	}{
		{"lowpass above nyquist", Lowpass(8000, 1, sr), biquad.Coefficients{B0: 1}},
		{"lowpass zero", Lowpass(0, 1, sr), biquad.Coefficients{}},
		{"peak above nyquist", Peak(10000, 6, 1.2, sr), biquad.Coefficients{B0: 1}},
		{"peak zero", Peak(0, 6, 1.2, sr), biquad.Coefficients{B0: a2}},
		{"lowshelf above nyquist", LowShelfFilter(9000, 6, sr), biquad.Coefficients{B0: a2}},
		{"lowshelf zero", LowShelfFilter(0, 6, sr), biquad.Coefficients{B0: 1}},
		{"highshelf above nyquist", HighShelfFilter(10000, 6, sr), biquad.Coefficients{B0: 1}},
		{"highshelf negative", HighShelfFilter(-5, 6, sr), biquad.Coefficients{B0: a2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !almostEqual(tt.c.B0, tt.want.B0, 1e-12) ||
				tt.c.B1 != tt.want.B1 || tt.c.B2 != tt.want.B2 ||
				tt.c.A1 != tt.want.A1 || tt.c.A2 != tt.want.A2 {
				t.Fatalf("got %+v, want %+v", tt.c, tt.want)
			}
		})
	}
}

func TestDesignDispatch(t *testing.T) {
	sr := 44100.0

	if Design(LowPass, 1000, 2, 0, sr) != Lowpass(1000, 2, sr) {
		t.Fatal("LowPass dispatch mismatch")
	}
	if Design(Peaking, 500, 1.2, 4, sr) != Peak(500, 4, 1.2, sr) {
		t.Fatal("Peaking dispatch mismatch")
	}
	if Design(LowShelf, 80, 99, 4, sr) != LowShelfFilter(80, 4, sr) {
		t.Fatal("LowShelf dispatch mismatch")
	}
	if Design(HighShelf, 10000, 99, 4, sr) != HighShelfFilter(10000, 4, sr) {
		t.Fatal("HighShelf dispatch mismatch")
	}
	if Design(Kind(42), 1000, 1, 0, sr) != (biquad.Coefficients{B0: 1}) {
		t.Fatal("unknown kind should be identity")
	}
}

func TestInvalidQFallsBack(t *testing.T) {
	sr := 48000.0
	if Lowpass(1000, 0, sr) != Lowpass(1000, defaultQ, sr) {
		t.Fatal("zero q should use default")
	}
	if Lowpass(1000, math.NaN(), sr) != Lowpass(1000, defaultQ, sr) {
		t.Fatal("NaN q should use default")
	}
}

func TestKindString(t *testing.T) {
	if LowShelf.String() != "lowshelf" || Kind(9).String() != "Kind(9)" {
		t.Fatalf("unexpected names: %s %s", LowShelf, Kind(9))
	}
}
