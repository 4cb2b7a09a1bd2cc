// Package buffer provides the multichannel audio buffer the renderer works
// on and a pool for per-channel scratch slices. Each channel is a plain
// []float64 so DSP functions can operate on it directly.
package buffer
