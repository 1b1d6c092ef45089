// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"slices"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "clamps above", input: 3.5, want: math.MaxInt16},
		{name: "clamps below", input: -2, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestAppendInt16(t *testing.T) {
	t.Parallel()

	got := AppendInt16([]int16{7}, []float32{0, 1, -1})
	want := []int16{7, 0, math.MaxInt16, -math.MaxInt16}
	if !slices.Equal(got, want) {
		t.Errorf("AppendInt16() = %v, want %v", got, want)
	}
}

func TestInterleave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		planar [][]float32
		dst    int
		want   []float32
	}{
		{name: "stereo", planar: [][]float32{{1, 2, 3}, {4, 5, 6}}, dst: 6, want: []float32{1, 4, 2, 5, 3, 6}},
		{name: "mono", planar: [][]float32{{1, 2}}, dst: 2, want: []float32{1, 2}},
		{name: "short dst", planar: [][]float32{{1, 2, 3}, {4, 5, 6}}, dst: 5, want: []float32{1, 4, 2, 5}},
		{name: "ragged", planar: [][]float32{{1, 2, 3}, {4}}, dst: 6, want: []float32{1, 4}},
		{name: "no channels", planar: nil, dst: 4, want: []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dst := make([]float32, tt.dst)
			n := Interleave(dst, tt.planar)
			if !slices.Equal(dst[:n], tt.want) {
				t.Errorf("Interleave() = %v, want %v", dst[:n], tt.want)
			}
		})
	}
}
