// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/trackplay/audio"
)

// extended80 encodes a whole, positive sample rate as an IEEE 754 80-bit
// extended float.
func extended80(rate uint32) [10]byte {
	var b [10]byte
	exp := 0
	for v := rate; v > 1; v >>= 1 {
		exp++
	}
	binary.BigEndian.PutUint16(b[0:2], uint16(16383+exp))
	binary.BigEndian.PutUint64(b[2:10], uint64(rate)<<(63-exp))
	return b
}

// createAIFFFile builds a FORM/AIFF with a COMM and an SSND chunk.
func createAIFFFile(sampleRate uint32, channels, bits int, frames uint32, data []byte) []byte {
	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, int16(channels))
	binary.Write(comm, binary.BigEndian, frames)
	binary.Write(comm, binary.BigEndian, int16(bits))
	rate := extended80(sampleRate)
	comm.Write(rate[:])

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	ssnd.Write(data)

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func int16BE(samples ...int16) []byte {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.BigEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}

func TestExtended80(t *testing.T) {
	t.Parallel()

	// 44100 Hz as stored by every AIFF writer
	want := [10]byte{0x40, 0x0e, 0xac, 0x44, 0, 0, 0, 0, 0, 0}
	if got := extended80(44100); got != want {
		t.Errorf("extended80(44100) = % x, want % x", got, want)
	}
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	data := createAIFFFile(8000, 2, 16, 2, int16BE(16384, -16384, 8192, -8192))

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	got, err := audio.Collect(src, 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	want := [][]float32{{0.5, 0.25}, {-0.5, -0.25}}
	for c := range want {
		for i := range want[c] {
			if got[c][i] != want[c][i] {
				t.Errorf("channel %d frame %d = %v, want %v", c, i, got[c][i], want[c][i])
			}
		}
	}
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	data := createAIFFFile(22050, 1, 16, 1, int16BE(100))
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "garbage", data: []byte("This is not AIFF data"), want: ErrNotAiffFile},
		{name: "empty", data: nil, want: ErrNotAiffFile},
		{name: "8 bit", data: createAIFFFile(8000, 1, 8, 2, []byte{1, 2}), want: ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
