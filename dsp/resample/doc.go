// Package resample provides the two sample-rate transforms the renderer
// needs: integer oversampling around nonlinear stages, and playback-rate
// stretching.
//
// Oversampler runs a linear-phase windowed-sinc FIR (Kaiser window) in both
// directions. Because rendering is offline, the filter's group delay is
// removed, so Upsample followed by Downsample is aligned with the input.
//
// Quality modes:
//
//	mode            taps/phase   nominal stopband
//	QualityFast     16           ~55 dB
//	QualityBalanced 32           ~75 dB
//	QualityBest     64           ~90 dB
//
// PlaybackRate reads the source at a fractional rate with linear
// interpolation, so pitch follows speed like a tape or an audio element's
// playbackRate.
package resample
