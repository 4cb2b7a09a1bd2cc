package buffer

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSampleRate is returned for non-positive or non-finite sample rates.
	ErrInvalidSampleRate = errors.New("buffer: invalid sample rate")
	// ErrChannelLength is returned when channels passed to FromChannels differ in length.
	ErrChannelLength = errors.New("buffer: channels differ in length")
)

// Buffer holds equal-length channels of float64 samples at a fixed sample rate.
type Buffer struct {
	channels   [][]float64
	sampleRate float64
}

// New returns a zero-filled Buffer with the given channel count and length.
// Negative sizes are treated as zero.
func New(channels, length int, sampleRate float64) *Buffer {
	channels = max(channels, 0)
	length = max(length, 0)

	b := &Buffer{
		channels:   make([][]float64, channels),
		sampleRate: sampleRate,
	}
	for i := range b.channels {
		b.channels[i] = make([]float64, length)
	}

	return b
}

// FromChannels wraps existing channel slices without copying.
// Mutations to the slices are visible through the Buffer and vice versa.
func FromChannels(sampleRate float64, channels ...[]float64) (*Buffer, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	for i := 1; i < len(channels); i++ {
		if len(channels[i]) != len(channels[0]) {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelLength, i, len(channels[i]), len(channels[0]))
		}
	}

	return &Buffer{channels: channels, sampleRate: sampleRate}, nil
}

// NumChannels returns the number of channels.
func (b *Buffer) NumChannels() int {
	return len(b.channels)
}

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() float64 {
	return b.sampleRate
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Len()) / b.sampleRate
}

// Channel returns the samples of channel i.
func (b *Buffer) Channel(i int) []float64 {
	return b.channels[i]
}

// Channels returns all channel slices.
func (b *Buffer) Channels() [][]float64 {
	return b.channels
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		channels:   make([][]float64, len(b.channels)),
		sampleRate: b.sampleRate,
	}
	for i, ch := range b.channels {
		out.channels[i] = append([]float64(nil), ch...)
	}

	return out
}

// Frame returns the samples of every channel at index i.
func (b *Buffer) Frame(i int) []float64 {
	frame := make([]float64, len(b.channels))
	for c, ch := range b.channels {
		frame[c] = ch[i]
	}
	return frame
}
