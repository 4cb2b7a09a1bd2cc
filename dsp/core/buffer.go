package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := min(len(dst), len(src))
	copy(dst[:n], src[:n])
	return n
}

// DelayInto writes src shifted later by delay samples into dst. The first
// delay samples of dst are zeroed and anything shifted past the end of dst
// is dropped. A negative delay is treated as zero.
func DelayInto(dst, src []float64, delay int) {
	delay = max(delay, 0)
	if delay >= len(dst) {
		Zero(dst)
		return
	}

	Zero(dst[:delay])
	n := CopyInto(dst[delay:], src)
	Zero(dst[delay+n:])
}
