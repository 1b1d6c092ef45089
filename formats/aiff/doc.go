// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) audio through
// github.com/go-audio/aiff.
//
// Big-endian integer PCM at 16, 24 or 32 bits is accepted, with any channel
// count and sample rate. The returned audio.Source yields interleaved float32
// samples in [-1, 1).
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// Inputs that cannot seek are buffered in memory first.
package aiff
