package resample

import (
	"fmt"
	"math"
)

// PlaybackLen returns the number of output samples produced when n source
// samples are played at rate: ceil(n / rate).
func PlaybackLen(n int, rate float64) int {
	if n <= 0 || !(rate > 0) || math.IsInf(rate, 0) {
		return 0
	}

	return int(math.Ceil(float64(n) / rate))
}

// PlaybackRate reads src at the given rate with linear interpolation and
// writes len(dst) samples. Output sample i reads source position i*rate;
// positions at or past the end of src read zero.
func PlaybackRate(dst, src []float64, rate float64) error {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}

	n := len(src)
	for i := range dst {
		pos := float64(i) * rate
		idx := int(pos)
		frac := pos - float64(idx)

		var s0, s1 float64
		if idx < n {
			s0 = src[idx]
		}
		if idx+1 < n {
			s1 = src[idx+1]
		}

		dst[i] = s0 + frac*(s1-s0)
	}

	return nil
}
