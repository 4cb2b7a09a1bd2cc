package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-fxrender/dsp/conv"
)

func ExampleDirect() {
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.Direct(signal, kernel)

	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("First values: %.2f, %.2f, %.2f\n", result[0], result[1], result[2])

	// Output:
	// Output length: 11
	// First values: 0.25, 1.00, 2.00
}

func ExampleConvolveInto() {
	signal := []float64{1, 0, 0, 0}
	kernel := make([]float64, 100)
	for i := range kernel {
		kernel[i] = 1 / float64(i+1)
	}

	// Keep only as many samples as the signal has.
	out := make([]float64, len(signal))
	if err := conv.ConvolveInto(out, signal, kernel); err != nil {
		panic(err)
	}

	fmt.Printf("%.3f\n", out)

	// Output:
	// [1.000 0.500 0.333 0.250]
}
