// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// PutFloat32LE encodes src as little-endian IEEE 754 floats into dst and
// returns the number of bytes written. dst must hold 4*len(src) bytes.
func PutFloat32LE(dst []byte, src []float32) int {
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(v))
	}
	return 4 * len(src)
}
