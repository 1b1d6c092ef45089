// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/trackplay/audio"
)

// mockOggVorbisReader mimics oggvorbis.Reader: Read fills whole frames and
// returns the number of values written.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(buf[:len(buf)-len(buf)%m.channels], m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not Ogg Vorbis data"), nil} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Collect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		samples  []float32
		want     [][]float32
	}{
		{
			name:     "mono",
			channels: 1,
			samples:  []float32{0.1, 0.2, 0.3},
			want:     [][]float32{{0.1, 0.2, 0.3}},
		},
		{
			name:     "stereo",
			channels: 2,
			samples:  []float32{0.1, -0.1, 0.2, -0.2},
			want:     [][]float32{{0.1, 0.2}, {-0.1, -0.2}},
		},
		{
			name:     "surround",
			channels: 6,
			samples:  []float32{1, 2, 3, 4, 5, 6},
			want:     [][]float32{{1}, {2}, {3}, {4}, {5}, {6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &source{dec: &mockOggVorbisReader{sampleRate: 44100, channels: tt.channels, samples: tt.samples}}
			got, err := audio.Collect(src, 0)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("channels = %d, want %d", len(got), len(tt.want))
			}
			for c := range tt.want {
				for i := range tt.want[c] {
					if got[c][i] != tt.want[c][i] {
						t.Errorf("channel %d frame %d = %v, want %v", c, i, got[c][i], tt.want[c][i])
					}
				}
			}
		})
	}
}

func TestSource_ReadSamples_WholeFrames(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggVorbisReader{channels: 2, samples: []float32{1, 2, 3, 4}}}

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 2 {
		t.Fatalf("ReadSamples() = %d, %v, want 2, nil", n, err)
	}

	if _, err := src.ReadSamples(dst[:1]); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() on a partial frame error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggVorbisReader{channels: 1, samples: []float32{0.5}}}

	dst := make([]float32, 4)
	if n, err := src.ReadSamples(dst); n != 1 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 1, nil", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggVorbisReader{channels: 2, err: io.ErrUnexpectedEOF}}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}
