package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fxrender/dsp/filter/biquad"
)

// ShelfQ is the quality factor equivalent to a shelf slope of S = 1.
const ShelfQ = 1 / math.Sqrt2

const defaultQ = ShelfQ

// Kind selects a biquad response type.
type Kind int

const (
	LowPass Kind = iota
	LowShelf
	HighShelf
	Peaking
)

func (k Kind) String() string {
	switch k {
	case LowPass:
		return "lowpass"
	case LowShelf:
		return "lowshelf"
	case HighShelf:
		return "highshelf"
	case Peaking:
		return "peaking"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Design returns coefficients for the given response type. gainDB is
// ignored by LowPass and q is ignored by the shelves, which always use
// ShelfQ.
func Design(kind Kind, freq, q, gainDB, sampleRate float64) biquad.Coefficients {
	switch kind {
	case LowPass:
		return Lowpass(freq, q, sampleRate)
	case LowShelf:
		return LowShelfFilter(freq, gainDB, sampleRate)
	case HighShelf:
		return HighShelfFilter(freq, gainDB, sampleRate)
	case Peaking:
		return Peak(freq, gainDB, q, sampleRate)
	default:
		return identity()
	}
}

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
// A corner at or above Nyquist passes everything; a corner at or below
// 0 Hz blocks everything.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, band := normalizedW0(freq, sampleRate)
	switch band {
	case bandAbove:
		return identity()
	case bandBelow:
		return biquad.Coefficients{}
	case bandInvalid:
		return identity()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2
	b2 := b0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Peak designs a peaking-EQ biquad with gain in dB.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	a := math.Pow(10, gainDB/40)

	w0, band := normalizedW0(freq, sampleRate)
	switch band {
	case bandAbove, bandInvalid:
		return identity()
	case bandBelow:
		return constant(a * a)
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// LowShelfFilter designs a low-shelf biquad with gain in dB and slope 1.
func LowShelfFilter(freq, gainDB, sampleRate float64) biquad.Coefficients {
	a := math.Pow(10, gainDB/40)

	w0, band := normalizedW0(freq, sampleRate)
	switch band {
	case bandAbove:
		return constant(a * a)
	case bandBelow, bandInvalid:
		return identity()
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * ShelfQ)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// HighShelfFilter designs a high-shelf biquad with gain in dB and slope 1.
func HighShelfFilter(freq, gainDB, sampleRate float64) biquad.Coefficients {
	a := math.Pow(10, gainDB/40)

	w0, band := normalizedW0(freq, sampleRate)
	switch band {
	case bandAbove, bandInvalid:
		return identity()
	case bandBelow:
		return constant(a * a)
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * ShelfQ)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

type cornerBand int

const (
	bandInside cornerBand = iota
	bandBelow
	bandAbove
	bandInvalid
)

func normalizedW0(freq, sampleRate float64) (float64, cornerBand) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || math.IsNaN(freq) {
		return 0, bandInvalid
	}

	nyquist := sampleRate / 2
	switch {
	case freq <= 0:
		return 0, bandBelow
	case freq >= nyquist:
		return 0, bandAbove
	}

	return 2 * math.Pi * freq / sampleRate, bandInside
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func identity() biquad.Coefficients {
	return biquad.Coefficients{B0: 1}
}

func constant(g float64) biquad.Coefficients {
	return biquad.Coefficients{B0: g}
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return identity()
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
