package wav

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/cwbudde/algo-fxrender/dsp/buffer"
	"github.com/cwbudde/algo-fxrender/dsp/core"
)

const (
	// HeaderSize is the size of the RIFF, fmt, and data chunk headers.
	HeaderSize = 44

	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	formatPCM      = 1
	fmtChunkSize   = 16
)

// Quantize maps a sample to int16: clamp to [-1, 1], scale negative
// values by 32768 and others by 32767, and round to nearest. NaN maps to 0.
func Quantize(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}
	x = core.Clamp(x, -1, 1)

	if x < 0 {
		return int16(math.Round(x * 32768))
	}
	return int16(math.Round(x * 32767))
}

// DataSize returns the data chunk payload size in bytes for b.
func DataSize(b *buffer.Buffer) int {
	if b == nil {
		return 0
	}
	return b.Len() * b.NumChannels() * bytesPerSample
}

// Encode returns the complete file for b.
func Encode(b *buffer.Buffer) []byte {
	out := make([]byte, HeaderSize+DataSize(b))
	putHeader(out[:HeaderSize], b)
	putSamples(out[HeaderSize:], b)
	return out
}

// Write streams the file for b to w.
func Write(w io.Writer, b *buffer.Buffer) error {
	var hdr [HeaderSize]byte
	putHeader(hdr[:], b)

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	if b != nil {
		frame := make([]byte, b.NumChannels()*bytesPerSample)
		for i := range b.Len() {
			for c, ch := range b.Channels() {
				binary.LittleEndian.PutUint16(frame[c*bytesPerSample:], uint16(Quantize(ch[i])))
			}
			if _, err := bw.Write(frame); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func putHeader(dst []byte, b *buffer.Buffer) {
	var channels, sampleRate int
	if b != nil {
		channels = b.NumChannels()
		sampleRate = int(math.Round(b.SampleRate()))
	}
	dataSize := DataSize(b)
	blockAlign := channels * bytesPerSample

	le := binary.LittleEndian
	copy(dst[0:4], "RIFF")
	le.PutUint32(dst[4:8], uint32(HeaderSize-8+dataSize))
	copy(dst[8:12], "WAVE")
	copy(dst[12:16], "fmt ")
	le.PutUint32(dst[16:20], fmtChunkSize)
	le.PutUint16(dst[20:22], formatPCM)
	le.PutUint16(dst[22:24], uint16(channels))
	le.PutUint32(dst[24:28], uint32(sampleRate))
	le.PutUint32(dst[28:32], uint32(sampleRate*blockAlign))
	le.PutUint16(dst[32:34], uint16(blockAlign))
	le.PutUint16(dst[34:36], bitsPerSample)
	copy(dst[36:40], "data")
	le.PutUint32(dst[40:44], uint32(dataSize))
}

func putSamples(dst []byte, b *buffer.Buffer) {
	if b == nil {
		return
	}

	pos := 0
	for i := range b.Len() {
		for _, ch := range b.Channels() {
			binary.LittleEndian.PutUint16(dst[pos:], uint16(Quantize(ch[i])))
			pos += bytesPerSample
		}
	}
}
