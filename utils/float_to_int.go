// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample conversion helpers.
package utils

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, clamping values
// outside the range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps the scale symmetric
	return int16(x * 32767.0)
}

// AppendInt16 converts every sample in src and appends it to dst.
func AppendInt16(dst []int16, src []float32) []int16 {
	for _, x := range src {
		dst = append(dst, Float32ToInt16(x))
	}
	return dst
}
