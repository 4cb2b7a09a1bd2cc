// Package shaper builds and applies waveshaping transfer curves.
//
// A curve is a table of output values sampled across the input range
// [-1, 1]. Lookup maps an input sample onto the table and interpolates
// linearly between neighbouring entries, clamping to the end entries for
// inputs outside [-1, 1].
package shaper
