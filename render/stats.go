package render

import (
	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

// ChannelStats summarizes one rendered channel.
type ChannelStats struct {
	Peak    float64
	Clipped int
}

// Stats reports per-channel peak level and the number of samples outside
// [-1, 1], which the PCM16 encoder will clamp.
func Stats(b *buffer.Buffer) []ChannelStats {
	if b == nil {
		return nil
	}

	out := make([]ChannelStats, b.NumChannels())
	for c, ch := range b.Channels() {
		out[c].Peak = vecmath.MaxAbs(ch)
		if out[c].Peak <= 1 {
			continue
		}
		for _, v := range ch {
			if v > 1 || v < -1 {
				out[c].Clipped++
			}
		}
	}
	return out
}
