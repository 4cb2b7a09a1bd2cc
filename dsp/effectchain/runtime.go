package effectchain

import (
	"context"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
)

// Stage is one configured effect applied in place to a whole buffer.
type Stage interface {
	Process(ctx context.Context, b *buffer.Buffer) error
}

// ChannelProcessor processes one channel in place, starting at t = 0.
type ChannelProcessor interface {
	ProcessInPlace(buf []float64) error
}

// PerChannel runs p over every channel, checking ctx between channels.
func PerChannel(p ChannelProcessor) Stage {
	return channelStage{fx: p}
}

type channelStage struct {
	fx ChannelProcessor
}

func (s channelStage) Process(ctx context.Context, b *buffer.Buffer) error {
	for _, ch := range b.Channels() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.fx.ProcessInPlace(ch); err != nil {
			return err
		}
	}
	return nil
}

// BufferProcessor processes a multichannel buffer in place.
type BufferProcessor interface {
	Process(b *buffer.Buffer) error
}

// WholeBuffer wraps p as a Stage.
func WholeBuffer(p BufferProcessor) Stage {
	return bufferStage{fx: p}
}

type bufferStage struct {
	fx BufferProcessor
}

func (s bufferStage) Process(ctx context.Context, b *buffer.Buffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.fx.Process(b)
}
