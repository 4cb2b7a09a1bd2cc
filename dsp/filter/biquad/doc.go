// Package biquad provides the second-order IIR filter runtime used by the
// equalizer, low-pass, and distortion tone stages.
//
// A [Section] implements Direct Form II Transposed processing for one
// section defined by [Coefficients]. Sections cascade through [Chain].
// Coefficient design lives in dsp/filter/design.
package biquad
