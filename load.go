// SPDX-License-Identifier: EPL-2.0

package trackplay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ik5/trackplay/audio"
	"github.com/ik5/trackplay/engine"
	"golang.org/x/sync/errgroup"
)

// TrackInfo describes one track of a graph. The track's id is its index in
// the slice passed to LoadAll.
type TrackInfo struct {
	// Src is a file path or an http(s) URL. Ignored when Data is set.
	Src string
	// Data holds an encoded file already in memory.
	Data []byte
	// Format picks the decoder ("wav", "mp3", ...). Empty means the
	// extension of Src, then the Content-Type of an HTTP response.
	Format string
	// Next is the automatic successor, engine.NoTrack to stop after this
	// track.
	Next engine.TrackID
}

func (t TrackInfo) name() string {
	if t.Data != nil {
		return "<memory>"
	}
	return t.Src
}

// LoadAll fetches and decodes every track concurrently, then replaces the
// engine's library in one step, rewound to track 0. Nothing is loaded when any
// track fails.
func (p *Player) LoadAll(ctx context.Context, tracks []TrackInfo) error {
	return p.LoadAllFrom(ctx, tracks, 0)
}

// LoadAllFrom is LoadAll with start as the track Stop rewinds to.
func (p *Player) LoadAllFrom(ctx context.Context, tracks []TrackInfo, start engine.TrackID) error {
	if !p.isOpen() {
		return ErrNotOpen
	}

	began := time.Now()
	decoded := make([]engine.Track, len(tracks))
	next := make([]engine.TrackID, len(tracks))

	g, gctx := errgroup.WithContext(ctx)
	if p.cfg.DecodeWorkers > 0 {
		g.SetLimit(p.cfg.DecodeWorkers)
	}
	for i, info := range tracks {
		next[i] = info.Next
		g.Go(func() error {
			track, err := p.loadTrack(gctx, info)
			if err != nil {
				return fmt.Errorf("track %d (%s): %w", i, info.name(), err)
			}
			decoded[i] = track
			p.log.Debug().
				Int("track", i).
				Str("src", info.name()).
				Int("channels", track.Channels()).
				Int("frames", track.Frames()).
				Msg("track decoded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.log.Error().Err(err).Msg("loading tracks failed")
		return err
	}

	if err := p.engine.Load(ctx, decoded, start, engine.GraphFromList(next)); err != nil {
		return fmt.Errorf("loading library: %w", err)
	}
	p.log.Info().
		Int("tracks", len(tracks)).
		Stringer("start", start).
		Dur("took", time.Since(began)).
		Msg("library loaded")
	return nil
}

func (p *Player) loadTrack(ctx context.Context, info TrackInfo) (engine.Track, error) {
	r, contentType, err := p.fetch(ctx, info)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	dec, err := p.decoderFor(info, contentType)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	defer src.Close()

	if src.SampleRate() != p.cfg.SampleRate {
		return nil, fmt.Errorf("%d Hz, player runs at %d Hz: %w",
			src.SampleRate(), p.cfg.SampleRate, ErrSampleRateMismatch)
	}
	if p.cfg.Channels == 1 && src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	planar, err := audio.Collect(src, p.cfg.MaxTrackFrames)
	if err != nil {
		return nil, err
	}
	return engine.Track(planar), nil
}

// fetch returns the encoded bytes of info and, for HTTP sources, the
// response's Content-Type.
func (p *Player) fetch(ctx context.Context, info TrackInfo) (io.ReadCloser, string, error) {
	if info.Data != nil {
		return io.NopCloser(bytes.NewReader(info.Data)), "", nil
	}

	if !isURL(info.Src) {
		f, err := os.Open(info.Src)
		if err != nil {
			return nil, "", fmt.Errorf("opening file: %w", err)
		}
		return f, "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.Src, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}
	resp, err := p.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, "", fmt.Errorf("%s: %w", resp.Status, ErrFetchFailed)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// formats by MIME subtype, for URLs without an extension
var contentTypes = map[string]string{
	"wav":      "wav",
	"x-wav":    "wav",
	"wave":     "wav",
	"vnd.wave": "wav",
	"aiff":     "aiff",
	"x-aiff":   "aiff",
	"mpeg":     "mp3",
	"mp3":      "mp3",
	"ogg":      "ogg",
	"vorbis":   "ogg",
}

func (p *Player) decoderFor(info TrackInfo, contentType string) (audio.Decoder, error) {
	if info.Format != "" {
		if dec, ok := p.cfg.Registry.Get(info.Format); ok {
			return dec, nil
		}
		return nil, fmt.Errorf("format %q: %w", info.Format, ErrUnsupportedFormat)
	}

	name := info.Src
	if isURL(name) {
		name = urlPath(name)
	}
	if dec, ok := p.cfg.Registry.Lookup(name); ok {
		return dec, nil
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		_, sub, _ := strings.Cut(mediaType, "/")
		if format, ok := contentTypes[sub]; ok {
			if dec, ok := p.cfg.Registry.Get(format); ok {
				return dec, nil
			}
		}
	}

	return nil, fmt.Errorf("%q: %w", info.name(), ErrUnsupportedFormat)
}

// urlPath drops the scheme and host so a dotted host name is not taken for
// an extension.
func urlPath(u string) string {
	rest := u[strings.Index(u, "://")+3:]
	i := strings.IndexAny(rest, "/?#")
	if i < 0 || rest[i] != '/' {
		return ""
	}
	return rest[i:]
}
