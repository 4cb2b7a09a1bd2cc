package effectchain

import (
	"context"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/fx/settings"
)

// stubStage counts calls and records the buffer it saw.
type stubStage struct {
	calls int
	last  *buffer.Buffer
}

func (s *stubStage) Process(_ context.Context, b *buffer.Buffer) error {
	s.calls++
	s.last = b
	return nil
}

func dummyFactory(_ Context, _ settings.EffectSettings) (Stage, error) {
	return &stubStage{}, nil
}

// gainProcessor multiplies every sample by a fixed gain.
type gainProcessor struct {
	gain float64
}

func (g gainProcessor) ProcessInPlace(buf []float64) error {
	for i := range buf {
		buf[i] *= g.gain
	}
	return nil
}

// appendStage records its tag into a shared log.
type appendStage struct {
	tag string
	log *[]string
}

func (a appendStage) Process(_ context.Context, _ *buffer.Buffer) error {
	*a.log = append(*a.log, a.tag)
	return nil
}
