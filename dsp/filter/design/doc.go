// Package design provides RBJ cookbook biquad coefficient designers.
//
// The functions in this package produce coefficients consumable by
// dsp/filter/biquad. Out-of-band corner frequencies follow the Web Audio
// BiquadFilterNode rules: a filter whose corner sits at or above Nyquist
// (or at or below 0 Hz) degenerates to an identity, a constant gain, or
// silence instead of producing unstable coefficients.
package design
