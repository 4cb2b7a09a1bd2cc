package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// directThreshold is the longest kernel Convolve handles in the time domain.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution into dst. Only the first len(dst)
// samples of the full result are produced; anything past len(a)+len(b)-1
// is zeroed.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m := len(b)
	temp := make([]float64, m)

	for i, x := range a {
		if i >= len(dst) {
			break
		}
		if x == 0 {
			continue
		}

		n := min(m, len(dst)-i)
		vecmath.ScaleBlock(temp[:n], b[:n], x)
		vecmath.AddBlockInPlace(dst[i:i+n], temp[:n])
	}
}

// Convolve performs linear convolution with automatic algorithm selection.
// Kernels up to 64 samples use direct convolution; longer kernels use
// FFT overlap-add.
func Convolve(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(signal)+len(kernel)-1)
	if err := ConvolveInto(out, signal, kernel); err != nil {
		return nil, err
	}

	return out, nil
}

// ConvolveInto writes the first len(dst) samples of the linear convolution
// of signal and kernel into dst.
func ConvolveInto(dst, signal, kernel []float64) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}

	// Convolution commutes; keep the shorter operand as the kernel.
	if len(kernel) > len(signal) {
		signal, kernel = kernel, signal
	}

	if len(kernel) <= directThreshold {
		DirectTo(dst, signal, kernel)
		return nil
	}

	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return err
	}

	return oa.ProcessInto(dst, signal)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
