// Package reverb provides an offline convolution reverb driven by a
// synthesized decaying-noise impulse response.
//
// ImpulseResponse builds the stereo impulse response. ConvolutionReverb
// mixes the dry signal with a pre-delayed, FFT-convolved wet signal and
// truncates the reverb tail at the end of the input.
package reverb
