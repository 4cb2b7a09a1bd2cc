package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBufferNearlyEqual compares shape, sample rate, and every channel.
func RequireBufferNearlyEqual(t testing.TB, got, want *buffer.Buffer, eps float64) {
	t.Helper()
	if got.NumChannels() != want.NumChannels() {
		t.Fatalf("channels: got %d, want %d", got.NumChannels(), want.NumChannels())
	}
	if got.SampleRate() != want.SampleRate() {
		t.Fatalf("sample rate: got %v, want %v", got.SampleRate(), want.SampleRate())
	}
	for c := 0; c < got.NumChannels(); c++ {
		diff, err := MaxAbsDiff(got.Channel(c), want.Channel(c))
		if err != nil {
			t.Fatalf("channel %d: %v", c, err)
		}
		if diff > eps {
			t.Fatalf("channel %d: max diff %v > eps %v", c, diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
