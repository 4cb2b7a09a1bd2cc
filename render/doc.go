// Package render runs an offline effect render: it resamples a source
// buffer at the configured playback rate, applies the active effect stages
// in their fixed order, and returns a new buffer. The source is never
// modified.
//
// Each render owns all of its buffers and filter state, so independent
// renders may run concurrently (see Go and Batch).
package render
