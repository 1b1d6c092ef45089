// SPDX-License-Identifier: EPL-2.0

package otosink

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Sink owns the oto context and the player reading from a Reader. oto allows
// one context per process, so only one Sink may be opened.
type Sink struct {
	ctx    *oto.Context
	player *oto.Player
}

// Open creates the oto context, waits until the device is ready or ctx is
// done, and starts pulling blocks from proc.
func Open(ctx context.Context, proc Processor, sampleRate, channels, blockFrames int) (*Sink, error) {
	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(blockFrames) * time.Second / time.Duration(sampleRate),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}

	select {
	case <-ready:
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for audio device: %w", ctx.Err())
	}

	player := otoCtx.NewPlayer(NewReader(proc, channels, blockFrames))
	player.Play()

	return &Sink{ctx: otoCtx, player: player}, nil
}

// Err reports a device failure seen by oto, if any.
func (s *Sink) Err() error {
	return s.ctx.Err()
}

// Close stops playback and suspends the device.
func (s *Sink) Close() error {
	if err := s.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	if err := s.ctx.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}
