package wav_test

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/cwbudde/algo-fxrender/codec/wav"
	"github.com/cwbudde/algo-fxrender/fx/settings"
	"github.com/cwbudde/algo-fxrender/internal/testutil"
	"github.com/cwbudde/algo-fxrender/render"
)

func TestEncodeRenderedDoubleSpeed(t *testing.T) {
	t.Parallel()

	src := testutil.NewBuffer(t, 44100, testutil.DeterministicSine(440, 44100, 0.5, 44100))
	s := settings.Default()
	s.Speed = settings.SpeedSettings{Rate: 2, Enabled: true}

	out, err := render.Render(context.Background(), src, s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Len() != 22050 {
		t.Fatalf("Len() = %d, want 22050", out.Len())
	}

	data := wav.Encode(out)
	le := binary.LittleEndian
	if ch := le.Uint16(data[22:24]); ch != 1 {
		t.Fatalf("channels = %d, want 1", ch)
	}
	if sr := le.Uint32(data[24:28]); sr != 44100 {
		t.Fatalf("sample rate = %d, want 44100", sr)
	}
	if bits := le.Uint16(data[34:36]); bits != 16 {
		t.Fatalf("bits = %d, want 16", bits)
	}
	if size := le.Uint32(data[40:44]); size != 44100 {
		t.Fatalf("data size = %d, want 44100", size)
	}
}
