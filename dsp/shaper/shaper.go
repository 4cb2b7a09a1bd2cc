package shaper

import "math"

// CurveLength is the number of entries produced by Curve.
const CurveLength = 44100

// Curve returns the soft-clipping transfer curve for a distortion
// character in [0, 1]:
//
//	k = character*100
//	curve(x) = (π+k)·x / (π+k·|x|),  x_i = 2i/CurveLength - 1
//
// Character 0 gives a straight line; larger values push the curve towards
// a hard knee.
func Curve(character float64) []float64 {
	k := character * 100
	curve := make([]float64, CurveLength)

	for i := range curve {
		x := 2*float64(i)/CurveLength - 1
		curve[i] = (math.Pi + k) * x / (math.Pi + k*math.Abs(x))
	}

	return curve
}

// Lookup evaluates curve at input x. An empty curve passes x through.
func Lookup(curve []float64, x float64) float64 {
	n := len(curve)
	switch n {
	case 0:
		return x
	case 1:
		return curve[0]
	}

	v := float64(n-1) / 2 * (x + 1)
	if !(v > 0) {
		return curve[0]
	}
	if v >= float64(n-1) {
		return curve[n-1]
	}

	k := int(v)
	f := v - float64(k)

	return curve[k] + f*(curve[k+1]-curve[k])
}

// ApplyBlock shapes buf in-place through curve.
func ApplyBlock(curve, buf []float64) {
	for i, x := range buf {
		buf[i] = Lookup(curve, x)
	}
}
