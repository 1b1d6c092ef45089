// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMReader is the part of the go-audio wav and aiff decoders an IntSource
// reads from.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource adapts a go-audio integer PCM decoder to Source, scaling samples
// of the given bit depth into [-1, 1).
type IntSource struct {
	dec       PCMReader
	format    *goaudio.Format
	bitDepth  int
	scale     float32
	buf       *goaudio.IntBuffer
	closer    io.Closer
	exhausted bool
}

// NewIntSource wraps dec. closer, when not nil, is closed by Close.
func NewIntSource(dec PCMReader, format *goaudio.Format, bitDepth int, closer io.Closer) *IntSource {
	return &IntSource{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		scale:    1 / float32(int64(1)<<(bitDepth-1)),
		closer:   closer,
	}
}

func (s *IntSource) SampleRate() int { return s.format.SampleRate }
func (s *IntSource) Channels() int   { return s.format.NumChannels }

// BitDepth is the bit depth of the underlying integer samples.
func (s *IntSource) BitDepth() int { return s.bitDepth }

func (s *IntSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.exhausted {
		return 0, io.EOF
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	switch {
	case err == io.EOF || (err == nil && n < len(dst)):
		s.exhausted = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	case err != nil:
		return n, fmt.Errorf("reading pcm: %w", err)
	}
	return n, nil
}
