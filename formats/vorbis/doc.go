// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float natively, so samples are passed through as is.
// ReadSamples only fills whole frames and returns audio.ErrInvalidDstSize
// when dst cannot hold one.
package vorbis
