package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	gowav "github.com/go-audio/wav"
)

var errNotPCM = errors.New("not an integer PCM WAV file")

const wavFormatPCM = 1

// decode reads an integer PCM WAV stream into a planar buffer with samples
// scaled to [-1, 1).
func decode(r io.ReadSeeker) (*buffer.Buffer, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", errNotPCM, err)
		}
		return nil, errNotPCM
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", errNotPCM, dec.WavAudioFormat)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	channels := int(dec.NumChans)
	frames := len(pcm.Data) / channels
	b := buffer.New(channels, frames, float64(dec.SampleRate))

	scale := 1 / float64(int(1)<<(dec.BitDepth-1))
	offset := 0
	if dec.BitDepth == 8 {
		offset = 128
	}

	for c, ch := range b.Channels() {
		for i := range ch {
			ch[i] = float64(pcm.Data[i*channels+c]-offset) * scale
		}
	}

	return b, nil
}

func decodeFile(path string) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
