// Package wav serializes rendered buffers as canonical 44-byte-header
// RIFF/WAVE files with interleaved 16-bit little-endian PCM samples.
//
// Encoding is total: every buffer, including an empty one, yields a
// well-formed file. Samples are clamped to [-1, 1] before quantization.
package wav
