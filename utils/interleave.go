// SPDX-License-Identifier: EPL-2.0

package utils

// Interleave writes planar[c][f] to dst[f*len(planar)+c] for the frames all
// channels share, and returns the number of values written. dst must hold
// len(planar) * frames values.
func Interleave(dst []float32, planar [][]float32) int {
	channels := len(planar)
	if channels == 0 {
		return 0
	}

	frames := len(planar[0])
	for _, ch := range planar[1:] {
		frames = min(frames, len(ch))
	}
	frames = min(frames, len(dst)/channels)

	for c, ch := range planar {
		for f, v := range ch[:frames] {
			dst[f*channels+c] = v
		}
	}
	return frames * channels
}
