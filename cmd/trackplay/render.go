// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ik5/trackplay"
	"github.com/ik5/trackplay/engine"
	"github.com/ik5/trackplay/formats/wav"
	"github.com/ik5/trackplay/utils"
	"github.com/rs/zerolog"
)

// renderToFile plays the loaded library from its start track until it stops
// on its own, limit is reached or ctx is done, and writes it as a WAV.
func renderToFile(ctx context.Context, p *trackplay.Player, filename string, limit time.Duration, logger zerolog.Logger) error {
	samples, err := render(ctx, p, limit)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	cfg := p.Config()
	if err := wav.WriteWAV16(w, cfg.SampleRate, cfg.Channels, samples); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info().
		Str("file", filename).
		Dur("length", time.Duration(len(samples)/cfg.Channels)*time.Second/time.Duration(cfg.SampleRate)).
		Msg("rendered")
	return nil
}

// render pulls blocks from p and returns them interleaved as 16-bit PCM.
func render(ctx context.Context, p *trackplay.Player, limit time.Duration) ([]int16, error) {
	cfg := p.Config()
	if err := p.Play(ctx, engine.NoTrack); err != nil {
		return nil, err
	}

	planar := make([][]float32, cfg.Channels)
	for c := range planar {
		planar[c] = make([]float32, cfg.BlockSize)
	}
	interleaved := make([]float32, cfg.Channels*cfg.BlockSize)

	maxFrames := int(limit.Seconds() * float64(cfg.SampleRate))
	var out []int16
	for frames := 0; frames < maxFrames; frames += cfg.BlockSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.Render(planar); err != nil {
			return nil, err
		}
		n := utils.Interleave(interleaved, planar)
		out = utils.AppendInt16(out, interleaved[:n])

		if !p.Snapshot().Playing {
			break
		}
	}
	return out, nil
}
