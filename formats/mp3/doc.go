// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields two interleaved channels; mono streams are
// duplicated by go-mp3. Samples are float32 in [-1, 1).
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
