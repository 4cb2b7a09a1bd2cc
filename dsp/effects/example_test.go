package effects_test

import (
	"fmt"

	"github.com/cwbudde/algo-fxrender/dsp/effects"
)

func ExampleTremolo_Gain() {
	tm, err := effects.NewTremolo(8, effects.WithTremoloRateHz(1), effects.WithTremoloDepth(1))
	if err != nil {
		panic(err)
	}

	env := make([]float64, 8)
	tm.Gain(env)
	for _, g := range env {
		fmt.Printf("%.2f ", g)
	}
	fmt.Println()
	// Output:
	// 0.50 0.15 0.00 0.15 0.50 0.85 1.00 0.85
}

func ExamplePanner_ProcessStereo() {
	p, err := effects.NewPanner(44100, effects.WithPan(-1))
	if err != nil {
		panic(err)
	}

	left := []float64{0.25, 0.5}
	right := []float64{0.5, 0.25}
	if err := p.ProcessStereo(left, right); err != nil {
		panic(err)
	}
	fmt.Println(left, right)
	// Output:
	// [0.75 0.75] [0 0]
}
