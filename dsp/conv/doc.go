// Package conv provides linear convolution for long impulse responses.
//
// Two strategies are offered:
//
//   - Direct: O(N*M) time-domain convolution on vecmath block kernels,
//     used for short kernels.
//   - Overlap-add: FFT-based block convolution on algo-fft plans, used for
//     reverb-length kernels.
//
// Convolve picks between them by kernel length. Both produce the same
// result within floating-point tolerance.
//
// When only a prefix of the result is wanted (for example a reverb tail
// that is cut at the end of the dry signal), use ConvolveInto or
// OverlapAdd.ProcessInto so the discarded tail is never accumulated.
package conv
