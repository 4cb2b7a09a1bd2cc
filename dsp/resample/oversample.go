package resample

import (
	"fmt"

	"github.com/cwbudde/algo-fxrender/dsp/core"
)

// Oversampler converts a block to factor times its sample rate and back
// with a shared linear-phase lowpass. It is stateless between calls and
// safe for concurrent use.
type Oversampler struct {
	factor int
	taps   []float64
	delay  int
}

// NewOversampler designs an Oversampler for the given integer factor.
// A factor of 1 yields a pass-through.
func NewOversampler(factor int, opts ...Option) (*Oversampler, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	o := &Oversampler{factor: factor}
	if factor == 1 {
		return o, nil
	}

	taps, err := designLowpass(factor, newConfig(opts))
	if err != nil {
		return nil, err
	}

	o.taps = taps
	o.delay = (len(taps) - 1) / 2

	return o, nil
}

// Factor returns the oversampling factor.
func (o *Oversampler) Factor() int {
	return o.factor
}

// Taps returns a copy of the anti-imaging/anti-aliasing filter.
func (o *Oversampler) Taps() []float64 {
	return append([]float64(nil), o.taps...)
}

// Upsample writes len(src)*Factor() samples into dst (reusing its capacity)
// and returns it. Output sample n*Factor() is aligned with input sample n.
func (o *Oversampler) Upsample(dst, src []float64) []float64 {
	L := o.factor
	dst = core.EnsureLen(dst, len(src)*L)

	if L == 1 {
		copy(dst, src)
		return dst
	}

	h := o.taps
	nTaps := len(h)
	gain := float64(L)

	// y[n] = L * sum_m x[m] * h[n + delay - m*L], restricted to valid taps.
	for n := range dst {
		k := n + o.delay
		mHi := min(k/L, len(src)-1)
		mLo := 0
		if k-(nTaps-1) > 0 {
			mLo = (k - (nTaps - 1) + L - 1) / L
		}

		var acc float64
		for m := mLo; m <= mHi; m++ {
			acc += src[m] * h[k-m*L]
		}

		dst[n] = acc * gain
	}

	return dst
}

// Downsample filters src and keeps every Factor()-th sample, writing
// len(src)/Factor() samples into dst (reusing its capacity).
func (o *Oversampler) Downsample(dst, src []float64) []float64 {
	L := o.factor
	dst = core.EnsureLen(dst, len(src)/L)

	if L == 1 {
		copy(dst, src)
		return dst
	}

	h := o.taps
	nTaps := len(h)

	// z[m] = sum_j y[j] * h[m*L + delay - j].
	for m := range dst {
		k := m*L + o.delay
		jHi := min(k, len(src)-1)
		jLo := max(k-(nTaps-1), 0)

		var acc float64
		for j := jLo; j <= jHi; j++ {
			acc += src[j] * h[k-j]
		}

		dst[m] = acc
	}

	return dst
}
