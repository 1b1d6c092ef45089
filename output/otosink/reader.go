// SPDX-License-Identifier: EPL-2.0

package otosink

import (
	"github.com/ik5/trackplay/utils"
)

const bytesPerSample = 4

// Processor fills out, indexed [channel][frame], with the next block.
type Processor interface {
	Process(out [][]float32)
}

// Reader renders fixed-size blocks on demand. It never returns an error and
// never allocates once constructed.
type Reader struct {
	proc        Processor
	planar      [][]float32
	interleaved []float32
	block       []byte
	// unread part of block
	pending []byte
}

// NewReader returns a reader producing channels interleaved channels in
// blocks of blockFrames frames.
func NewReader(proc Processor, channels, blockFrames int) *Reader {
	channels = max(channels, 1)
	blockFrames = max(blockFrames, 1)

	planar := make([][]float32, channels)
	for c := range planar {
		planar[c] = make([]float32, blockFrames)
	}
	return &Reader{
		proc:        proc,
		planar:      planar,
		interleaved: make([]float32, channels*blockFrames),
		block:       make([]byte, channels*blockFrames*bytesPerSample),
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		if len(r.pending) == 0 {
			r.render()
		}
		n := copy(p[written:], r.pending)
		r.pending = r.pending[n:]
		written += n
	}
	return written, nil
}

func (r *Reader) render() {
	r.proc.Process(r.planar)
	n := utils.Interleave(r.interleaved, r.planar)
	r.pending = r.block[:utils.PutFloat32LE(r.block, r.interleaved[:n])]
}
