// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/trackplay/internal/audiotest"
)

func TestMonoMixer_Mix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(channel int) float32
		want     float32
	}{
		{name: "mono passthrough", channels: 1, value: func(int) float32 { return 0.5 }, want: 0.5},
		{name: "stereo", channels: 2, value: func(c int) float32 { return 0.4 + 0.2*float32(c) }, want: 0.5},
		{name: "quad", channels: 4, value: func(c int) float32 { return float32(c) / 10 }, want: 0.15},
		{name: "eight", channels: 8, value: func(c int) float32 { return float32(c) / 10 }, want: 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_, c int) float32 {
				return tt.value(c)
			})
			mixer := NewMonoMixer(src)
			if mixer.Channels() != 1 {
				t.Errorf("Channels() = %d, want 1", mixer.Channels())
			}
			if mixer.SampleRate() != 8000 {
				t.Errorf("SampleRate() = %d, want 8000", mixer.SampleRate())
			}

			buf := make([]float32, 10)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 0.001 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))
	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if err != io.EOF || n != 5 {
		t.Errorf("ReadSamples() = %d, %v, want 5, io.EOF", n, err)
	}

	n, err = mixer.ReadSamples(buf)
	if err != io.EOF || n != 0 {
		t.Errorf("second ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 100))
	if n, err := mixer.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_CollectsToOneChannel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 2, 16000, 440)
	chans, err := Collect(NewMonoMixer(src), 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(chans) != 1 || len(chans[0]) != 16000 {
		t.Errorf("Collect() shape = %dx%d, want 1x16000", len(chans), len(chans[0]))
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(8000, 2, 100000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		_, _ = mixer.ReadSamples(buf)
	}
}
