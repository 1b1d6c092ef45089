// SPDX-License-Identifier: EPL-2.0

package trackplay

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/ik5/trackplay/audio"
	"github.com/ik5/trackplay/formats/aiff"
	"github.com/ik5/trackplay/formats/mp3"
	"github.com/ik5/trackplay/formats/vorbis"
	"github.com/ik5/trackplay/formats/wav"
	"github.com/rs/zerolog"
)

// Processor renders one block, indexed [channel][frame]. *engine.Engine is
// the Processor a Player hands to its output.
type Processor interface {
	Process(out [][]float32)
}

// OutputFunc opens a device that pulls blocks of blockFrames frames from
// proc on its own real-time goroutine until closed.
type OutputFunc func(ctx context.Context, proc Processor, sampleRate, channels, blockFrames int) (io.Closer, error)

// Config holds everything a Player needs. Start from DefaultConfig.
type Config struct {
	SampleRate int
	Channels   int
	// frames per block handed to the output
	BlockSize int
	// pending commands before Send blocks
	QueueSize int

	FadeIn     time.Duration
	FadeOut    time.Duration
	FadeOnStop bool

	// longest accepted track in frames, 0 for no limit
	MaxTrackFrames int
	// decode workers in LoadAll, 0 for one per track
	DecodeWorkers int

	Registry   *audio.Registry
	HTTPClient *http.Client
	// nil leaves the player offline, driven by Render
	Output OutputFunc
	Logger zerolog.Logger
}

// DefaultConfig returns a stereo 44.1 kHz configuration without an output
// and with a disabled logger.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Channels:   2,
		BlockSize:  512,
		QueueSize:  64,
		Registry:   DefaultRegistry(),
		HTTPClient: http.DefaultClient,
		Logger:     zerolog.Nop(),
	}
}

// DefaultRegistry returns a registry with every bundled decoder under its
// usual file extensions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

// SecondsToSamples converts a duration in seconds to whole samples at rate,
// rounding down.
func SecondsToSamples(seconds float64, rate int) int {
	return int(math.Floor(seconds * float64(rate)))
}
