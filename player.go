// SPDX-License-Identifier: EPL-2.0

package trackplay

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ik5/trackplay/engine"
	"github.com/rs/zerolog"
)

// Player is the host side of the engine. Its methods are safe for concurrent
// use; none of them runs on the real-time goroutine.
type Player struct {
	cfg    Config
	engine *engine.Engine
	log    zerolog.Logger

	mu     sync.Mutex
	open   bool
	closed bool
	output io.Closer
}

// New builds a player from cfg. Zero fields fall back to DefaultConfig.
func New(cfg Config) *Player {
	def := DefaultConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.Channels <= 0 {
		cfg.Channels = def.Channels
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = def.BlockSize
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.Registry == nil {
		cfg.Registry = def.Registry
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = def.HTTPClient
	}

	p := &Player{
		cfg: cfg,
		log: cfg.Logger.With().Str("component", "player").Logger(),
	}
	p.engine = engine.New(engine.Options{
		QueueSize:      cfg.QueueSize,
		FadeOnStop:     cfg.FadeOnStop,
		FadeInSamples:  SecondsToSamples(cfg.FadeIn.Seconds(), cfg.SampleRate),
		FadeOutSamples: SecondsToSamples(cfg.FadeOut.Seconds(), cfg.SampleRate),
	})
	return p
}

// Config returns the effective configuration.
func (p *Player) Config() Config { return p.cfg }

// Open attaches the configured output, if any, and marks the engine ready.
// Commands sent before Open fail with ErrNotOpen, as does Open after Close.
func (p *Player) Open(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrNotOpen
	}
	if p.open {
		return nil
	}

	if p.cfg.Output != nil {
		out, err := p.cfg.Output(ctx, p.engine, p.cfg.SampleRate, p.cfg.Channels, p.cfg.BlockSize)
		if err != nil {
			return fmt.Errorf("opening output: %w", err)
		}
		p.output = out
	}

	p.engine.Ready()
	p.open = true
	p.log.Info().
		Int("sample_rate", p.cfg.SampleRate).
		Int("channels", p.cfg.Channels).
		Int("block_size", p.cfg.BlockSize).
		Bool("device", p.output != nil).
		Msg("player open")
	return nil
}

// Close detaches the output. The player cannot be reopened.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if !p.open {
		return nil
	}
	p.open = false
	p.log.Info().Msg("player closed")

	if p.output == nil {
		return nil
	}
	if err := p.output.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

func (p *Player) isOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *Player) send(ctx context.Context, cmd engine.Command) error {
	if !p.isOpen() {
		return ErrNotOpen
	}
	if err := p.engine.Send(ctx, cmd); err != nil {
		return fmt.Errorf("sending %v: %w", cmd.Kind, err)
	}
	p.log.Debug().Stringer("command", cmd.Kind).Msg("command queued")
	return nil
}

// Play starts playback from the beginning of start, or from the current head
// when start is engine.NoTrack.
func (p *Player) Play(ctx context.Context, start engine.TrackID) error {
	return p.send(ctx, engine.Play(start))
}

// Stop ends playback and rewinds to the library's start track.
func (p *Player) Stop(ctx context.Context) error {
	return p.send(ctx, engine.Stop())
}

// Pause fades out and holds the head when pause is true, and resumes with a
// fade-in when it is false.
func (p *Player) Pause(ctx context.Context, pause bool) error {
	if pause {
		return p.send(ctx, engine.Pause())
	}
	return p.send(ctx, engine.Resume())
}

// Next replaces the track that follows the current one. With currentIs other
// than engine.NoTrack the change only applies while currentIs is playing.
// next set to engine.NoTrack ends playback after the current track.
func (p *Player) Next(ctx context.Context, next, currentIs engine.TrackID) error {
	return p.send(ctx, engine.Next(next, currentIs))
}

// SetFadeInSeconds sets the fade-in applied on resume.
func (p *Player) SetFadeInSeconds(ctx context.Context, seconds float64) error {
	return p.send(ctx, engine.SetFadeIn(SecondsToSamples(seconds, p.cfg.SampleRate)))
}

// SetFadeOutSeconds sets the fade-out applied on pause.
func (p *Player) SetFadeOutSeconds(ctx context.Context, seconds float64) error {
	return p.send(ctx, engine.SetFadeOut(SecondsToSamples(seconds, p.cfg.SampleRate)))
}

// Snapshot returns the playback state as of the last rendered block.
func (p *Player) Snapshot() engine.State { return p.engine.Snapshot() }

// Render pulls the next block into out, indexed [channel][frame], for
// players without an output. It must be called from one goroutine at a time.
func (p *Player) Render(out [][]float32) error {
	p.mu.Lock()
	open, attached := p.open, p.output != nil
	p.mu.Unlock()

	if !open {
		return ErrNotOpen
	}
	if attached {
		return ErrOutputAttached
	}
	p.engine.Process(out)
	return nil
}
