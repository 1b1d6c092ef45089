// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/trackplay"
	"github.com/ik5/trackplay/engine"
	"github.com/rs/zerolog"
)

const pollInterval = 100 * time.Millisecond

// play starts the device player and forwards commands typed on in until
// playback ends, q is typed or ctx is done.
func play(ctx context.Context, p *trackplay.Player, in io.Reader, logger zerolog.Logger) error {
	if err := p.Play(ctx, engine.NoTrack); err != nil {
		return err
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	tick := time.NewTicker(pollInterval)
	defer tick.Stop()

	started := false
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("interrupted")
			return stopAndDrain(p)
		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			quit, err := apply(ctx, p, line)
			if err != nil {
				logger.Warn().Err(err).Str("input", line).Msg("command rejected")
			}
			if quit {
				return stopAndDrain(p)
			}
		case <-tick.C:
			s := p.Snapshot()
			if s.Playing {
				started = true
				continue
			}
			if started {
				logger.Info().Msg("playback finished")
				return nil
			}
		}
	}
}

// apply runs one command line and reports whether to quit.
func apply(ctx context.Context, p *trackplay.Player, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "p":
		return false, p.Pause(ctx, true)
	case "r":
		return false, p.Pause(ctx, false)
	case "s":
		return false, p.Stop(ctx)
	case "g":
		return false, p.Play(ctx, engine.NoTrack)
	case "n":
		next, current, err := parseNext(fields[1:])
		if err != nil {
			return false, err
		}
		return false, p.Next(ctx, next, current)
	case "q":
		return true, nil
	}
	return false, fmt.Errorf("unknown command %q", fields[0])
}

func parseNext(args []string) (next, current engine.TrackID, err error) {
	if len(args) == 0 || len(args) > 2 {
		return 0, 0, fmt.Errorf("usage: n <track|none> [current]")
	}
	ids := [2]engine.TrackID{engine.NoTrack, engine.NoTrack}
	for i, a := range args {
		if a == "none" {
			continue
		}
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("bad track id %q", a)
		}
		ids[i] = engine.TrackID(n)
	}
	return ids[0], ids[1], nil
}

// stopAndDrain stops playback and gives a fading stop time to finish.
func stopAndDrain(p *trackplay.Player) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := p.Stop(ctx); err != nil {
		return err
	}
	fade := p.Config().FadeOut
	if !p.Config().FadeOnStop || fade <= 0 {
		return nil
	}
	select {
	case <-time.After(fade + pollInterval):
	case <-ctx.Done():
	}
	return nil
}
