// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Options configures an Engine.
type Options struct {
	// QueueSize bounds the number of pending commands.
	QueueSize int

	// FadeOnStop makes Stop fade out over the fade-out duration before
	// rewinding, the way Pause does. By default Stop is a hard cut.
	FadeOnStop bool

	// FadeInSamples and FadeOutSamples are the initial fade durations.
	FadeInSamples  int
	FadeOutSamples int
}

// Engine is the playback engine. Process must only be called from one
// goroutine; every other method is safe for concurrent use.
type Engine struct {
	queue *Queue
	ready atomic.Bool

	// owned by the goroutine calling Process
	lib        *Library
	state      State
	env        FadeEnvelope
	fadeOnStop bool
	stopping   bool
	finishStop func()

	snapshot published
}

// New returns an engine with nothing loaded. Commands are refused until Ready
// is called.
func New(opts Options) *Engine {
	e := &Engine{
		queue:      NewQueue(opts.QueueSize),
		fadeOnStop: opts.FadeOnStop,
		state: State{
			Current:     0,
			Start:       0,
			PendingNext: NoTrack,
		},
	}
	e.env.SetFadeInSamples(opts.FadeInSamples)
	e.env.SetFadeOutSamples(opts.FadeOutSamples)
	e.finishStop = e.halt
	e.snapshot.store(&e.state)

	return e
}

// Ready completes initialization; from now on commands are accepted.
func (e *Engine) Ready() { e.ready.Store(true) }

// IsReady reports whether Ready has been called.
func (e *Engine) IsReady() bool { return e.ready.Load() }

// Send queues cmd for the next block, waiting for room until ctx is done.
func (e *Engine) Send(ctx context.Context, cmd Command) error {
	if !e.IsReady() {
		return fmt.Errorf("sending %v command: %w", cmd.Kind, ErrNotReady)
	}
	return e.queue.Send(ctx, cmd)
}

// TrySend queues cmd for the next block without waiting.
func (e *Engine) TrySend(cmd Command) error {
	if !e.IsReady() {
		return fmt.Errorf("sending %v command: %w", cmd.Kind, ErrNotReady)
	}
	return e.queue.TrySend(cmd)
}

// Load validates tracks and queues a load command. Nothing is queued when
// validation fails.
func (e *Engine) Load(ctx context.Context, tracks []Track, start TrackID, graph Graph) error {
	lib, err := NewLibrary(tracks, start, graph)
	if err != nil {
		return err
	}
	return e.Send(ctx, Load(lib))
}

// Snapshot returns the playback state as of the end of the last block.
func (e *Engine) Snapshot() State { return e.snapshot.load() }

// Process applies pending commands and then fills out, indexed
// [channel][frame], with the next len(out[0]) frames. Output channel c plays
// track channel c modulo the track's channel count.
func (e *Engine) Process(out [][]float32) {
	e.drain()
	if len(out) > 0 {
		e.render(out)
	}
	e.snapshot.store(&e.state)
}

func (e *Engine) render(out [][]float32) {
	lib := e.lib
	if lib == nil || lib.Len() == 0 ||
		((!e.state.Playing || e.state.Paused) && !e.env.FadingOut()) {
		silence(out, 0)
		return
	}

	track, ok := lib.Track(e.state.Current)
	if !ok {
		e.halt()
		silence(out, 0)
		return
	}
	e.state.Offset = min(max(e.state.Offset, 0), track.Frames())

	frames := len(out[0])
	for i := 0; i < frames; i++ {
		if e.state.Offset >= track.Frames() {
			// the track ran out before the fade-out did
			if e.env.FadingOut() {
				e.env.EndFadeOut()
				e.env.FadeOutGain(e.state.Offset, e.state.Paused)
				if !e.state.Playing || e.state.Paused {
					silence(out, i)
					return
				}
			}

			if !e.advance(lib, track.Frames()) {
				silence(out, i)
				return
			}
			track, _ = lib.Track(e.state.Current)
			if track.Frames() == 0 {
				zero(out, i)
				continue
			}
		}

		gain := e.env.FadeInGain(e.state.Offset)
		gain *= e.env.FadeOutGain(e.state.Offset, e.state.Paused)

		// a faded stop just completed, or a pause just went silent
		if !e.state.Playing || (e.state.Paused && !e.env.FadingOut()) {
			silence(out, i)
			return
		}

		n := len(track)
		for c, ch := range out {
			ch[i] = track[c%n][e.state.Offset] * gain
		}
		e.state.Offset++
	}
}

// advance moves the head from the end of a track of the given length to the
// pending successor. It returns false, after stopping, when there is none.
func (e *Engine) advance(lib *Library, frames int) bool {
	e.state.Offset = 0
	next := e.state.PendingNext
	if _, ok := lib.Track(next); !ok {
		e.halt()
		return false
	}
	e.env.Rebase(frames)
	e.state.Current = next
	e.state.PendingNext = lib.graph.Next(next)
	return true
}

func (e *Engine) drain() {
	for {
		cmd, ok := e.queue.Poll()
		if !ok {
			return
		}
		e.apply(cmd)
	}
}

func (e *Engine) apply(cmd Command) {
	switch cmd.Kind {
	case CmdLoad:
		if cmd.Library == nil {
			return
		}
		e.settleStop()
		e.load(cmd.Library)
	case CmdPlay:
		e.settleStop()
		e.play(cmd.Track)
	case CmdStop:
		e.stop()
	case CmdPause:
		e.settleStop()
		e.pause()
	case CmdResume:
		e.resume()
	case CmdNext:
		if cmd.CurrentIs == NoTrack || cmd.CurrentIs == e.state.Current {
			e.state.PendingNext = cmd.Track
		}
	case CmdSetFadeIn:
		e.env.SetFadeInSamples(cmd.Samples)
	case CmdSetFadeOut:
		e.env.SetFadeOutSamples(cmd.Samples)
	case CmdUnknown:
		// ignored, as is any kind this switch does not name
	}
}

func (e *Engine) load(lib *Library) {
	e.lib = lib
	e.state.Start = lib.start
	e.state.rewind(lib.graph)
	e.env.Reset()
}

func (e *Engine) play(start TrackID) {
	if start != NoTrack {
		e.state.Current = start
		e.state.Offset = 0
		if e.lib != nil {
			e.state.PendingNext = e.lib.graph.Next(start)
		} else {
			e.state.PendingNext = NoTrack
		}
		e.env.Reset()
	}
	e.state.Playing = true
}

func (e *Engine) stop() {
	if e.fadeOnStop && !e.stopping && e.state.Playing && !e.state.Paused &&
		e.lib != nil && e.lib.Len() > 0 {
		e.stopping = true
		e.env.StartFadeOut(e.state.Offset, e.finishStop)
		return
	}
	e.halt()
}

// settleStop completes a faded stop that is still ramping down.
func (e *Engine) settleStop() {
	if e.stopping {
		e.halt()
	}
}

// halt stops playback and rewinds the head.
func (e *Engine) halt() {
	e.stopping = false
	e.state.Playing = false
	e.state.Paused = false
	e.env.Reset()
	if e.lib != nil {
		e.state.Start = e.lib.start
		e.state.rewind(e.lib.graph)
		return
	}
	e.state.rewind(Graph{})
}

func (e *Engine) pause() {
	if e.state.Paused {
		return
	}
	e.state.Paused = true
	if e.state.Playing {
		e.env.StartFadeOut(e.state.Offset, nil)
	}
}

func (e *Engine) resume() {
	if !e.state.Paused {
		return
	}
	e.state.Paused = false
	e.env.CancelFadeOut()
	e.env.StartFadeIn(e.state.Offset)
}

func silence(out [][]float32, from int) {
	for _, ch := range out {
		clear(ch[from:])
	}
}

func zero(out [][]float32, i int) {
	for _, ch := range out {
		ch[i] = 0
	}
}
