// SPDX-License-Identifier: EPL-2.0

package playlist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/trackplay"
	"github.com/ik5/trackplay/engine"
	"gopkg.in/yaml.v3"
)

// Entry is one track of a playlist.
type Entry struct {
	Src    string `yaml:"src"`
	Format string `yaml:"format,omitempty"`
	Next   *int   `yaml:"next,omitempty"`
}

// Playlist is a parsed and validated playlist file. Fades are in seconds.
type Playlist struct {
	Start   int     `yaml:"start"`
	FadeIn  float64 `yaml:"fade_in,omitempty"`
	FadeOut float64 `yaml:"fade_out,omitempty"`
	Tracks  []Entry `yaml:"tracks"`
}

// Parse decodes and validates a playlist. Unknown keys are errors.
func Parse(r io.Reader) (*Playlist, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var pl Playlist
	if err := dec.Decode(&pl); err != nil {
		if err == io.EOF {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("parsing playlist: %w", err)
	}
	if err := pl.Validate(); err != nil {
		return nil, err
	}
	return &pl, nil
}

// Load reads the playlist at filename and makes relative file sources
// relative to its directory.
func Load(filename string) (*Playlist, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	pl, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	dir := filepath.Dir(filename)
	for i, e := range pl.Tracks {
		if isURL(e.Src) || filepath.IsAbs(e.Src) {
			continue
		}
		pl.Tracks[i].Src = filepath.Join(dir, e.Src)
	}
	return pl, nil
}

// Validate checks that the playlist describes a playable graph.
func (p *Playlist) Validate() error {
	if len(p.Tracks) == 0 {
		return ErrEmpty
	}
	if p.Start < 0 || p.Start >= len(p.Tracks) {
		return fmt.Errorf("start %d: %w", p.Start, ErrBadStart)
	}
	if p.FadeIn < 0 || p.FadeOut < 0 {
		return ErrBadFade
	}
	for i, e := range p.Tracks {
		if strings.TrimSpace(e.Src) == "" {
			return fmt.Errorf("track %d: %w", i, ErrMissingSource)
		}
		if e.Next != nil && (*e.Next < 0 || *e.Next >= len(p.Tracks)) {
			return fmt.Errorf("track %d next %d: %w", i, *e.Next, ErrBadSuccessor)
		}
	}
	return nil
}

// TrackInfos converts the entries for Player.LoadAllFrom.
func (p *Playlist) TrackInfos() []trackplay.TrackInfo {
	infos := make([]trackplay.TrackInfo, len(p.Tracks))
	for i, e := range p.Tracks {
		next := engine.NoTrack
		if e.Next != nil {
			next = engine.TrackID(*e.Next)
		}
		infos[i] = trackplay.TrackInfo{Src: e.Src, Format: e.Format, Next: next}
	}
	return infos
}

// StartTrack returns the start track id.
func (p *Playlist) StartTrack() engine.TrackID { return engine.TrackID(p.Start) }

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
