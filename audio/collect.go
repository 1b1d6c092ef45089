// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	collectChunk = 4096
	// consecutive empty reads tolerated before giving up
	maxEmptyReads = 100
)

// Collect reads src to the end and returns its samples deinterleaved, one
// slice per channel, all of the same length. A trailing partial frame is
// dropped. maxFrames, when positive, caps the track length and makes longer
// sources fail with ErrTooLong.
//
// Collect does not close src.
func Collect(src Source, maxFrames int) ([][]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	out := make([][]float32, channels)
	buf := make([]float32, collectChunk*channels)
	// values carried over when a read ends mid-frame
	pending := 0
	empty := 0

	for {
		n, err := src.ReadSamples(buf[pending:])
		if n == 0 && err == nil {
			if empty++; empty >= maxEmptyReads {
				return nil, fmt.Errorf("collecting samples: %w", io.ErrNoProgress)
			}
			continue
		}
		empty = 0
		n += pending

		frames := n / channels
		if maxFrames > 0 && len(out[0])+frames > maxFrames {
			return nil, fmt.Errorf("more than %d frames: %w", maxFrames, ErrTooLong)
		}
		for f := range frames {
			base := f * channels
			for c := range channels {
				out[c] = append(out[c], buf[base+c])
			}
		}

		pending = n - frames*channels
		copy(buf, buf[frames*channels:n])

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}
}
