// Package effects provides the offline effect processors of the render
// chain.
//
//   - Distortion: drive gain, oversampled waveshaper, and a tone low-pass.
//   - Equalizer: seven fixed bands (low shelf, five peaks, high shelf).
//   - LowPass: a single resonant low-pass biquad.
//   - Panner: equal-power stereo panner with optional LFO auto-pan.
//   - Tremolo: sinusoidal amplitude modulation.
//
// Convolution reverb lives in the reverb subpackage.
//
// Processors are configured once through functional options that validate
// their arguments. Each ProcessInPlace call treats its slice as one
// complete channel starting at t = 0, with fresh filter state, so a single
// processor can be applied to every channel of a buffer in turn.
package effects
