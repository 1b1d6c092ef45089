// SPDX-License-Identifier: EPL-2.0

// Command trackplay plays a YAML playlist on the sound device, or renders it
// to a WAV file with -w.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/trackplay"
	"github.com/ik5/trackplay/internal/config"
	"github.com/ik5/trackplay/output/otosink"
	"github.com/ik5/trackplay/playlist"
	"github.com/rs/zerolog"
)

func main() {
	env := config.Load()

	rate := flag.Int("rate", env.SampleRate, "Output sample rate in Hz. Every track must already be at this rate.")
	channels := flag.Int("channels", env.Channels, "Output channel count.")
	block := flag.Int("block", env.BlockSize, "Frames per rendered block.")
	fadeIn := flag.Duration("fade-in", env.FadeIn, "Fade-in on resume. Overrides the playlist.")
	fadeOut := flag.Duration("fade-out", env.FadeOut, "Fade-out on pause. Overrides the playlist.")
	fadeOnStop := flag.Bool("fade-on-stop", env.FadeOnStop, "Fade out on stop instead of cutting.")
	wavOut := flag.String("w", "", "Render to this 16-bit WAV file instead of playing.")
	limit := flag.Duration("d", 10*time.Minute, "Stop rendering after this much audio; looping playlists never end on their own.")
	logLevel := flag.String("log", env.LogLevel.String(), "Log level: debug, info, warn, error.")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	pl, err := playlist.Load(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot read playlist")
	}

	cfg := trackplay.DefaultConfig()
	cfg.SampleRate = *rate
	cfg.Channels = *channels
	cfg.BlockSize = *block
	cfg.QueueSize = env.QueueSize
	cfg.FadeOnStop = *fadeOnStop
	cfg.MaxTrackFrames = env.MaxTrackFrames
	cfg.HTTPClient = &http.Client{Timeout: env.HTTPTimeout}
	cfg.Logger = logger
	cfg.FadeIn = pickFade(*fadeIn, "fade-in", pl.FadeIn)
	cfg.FadeOut = pickFade(*fadeOut, "fade-out", pl.FadeOut)
	if *wavOut == "" {
		cfg.Output = openDevice
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	player := trackplay.New(cfg)
	if err := player.Open(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot open player")
	}
	defer player.Close()

	if err := player.LoadAllFrom(ctx, pl.TrackInfos(), pl.StartTrack()); err != nil {
		logger.Fatal().Err(err).Msg("cannot load playlist")
	}

	if *wavOut != "" {
		err = renderToFile(ctx, player, *wavOut, *limit, logger)
	} else {
		err = play(ctx, player, os.Stdin, logger)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("playback failed")
	}
}

// pickFade prefers an explicitly set flag over the playlist's value.
func pickFade(flagValue time.Duration, name string, playlistSeconds float64) time.Duration {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if set || playlistSeconds == 0 {
		return flagValue
	}
	return time.Duration(playlistSeconds * float64(time.Second))
}

func openDevice(ctx context.Context, proc trackplay.Processor, sampleRate, channels, blockFrames int) (io.Closer, error) {
	sink, err := otosink.Open(ctx, proc, sampleRate, channels, blockFrames)
	if err != nil {
		return nil, err
	}
	return sink, nil
}

func printUsage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] playlist.yaml\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "\nWhile playing, type p (pause), r (resume), s (stop), n <track> [current] (set next), q (quit).")
	fmt.Fprintln(flag.CommandLine.Output(), "Settings also come from TRACKPLAY_* environment variables.")
	flag.PrintDefaults()
}
