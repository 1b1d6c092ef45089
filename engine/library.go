// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// Track is one decoded clip, indexed [channel][frame]. Every channel has the
// same length.
type Track [][]float32

func (t Track) Channels() int { return len(t) }

// Frames returns the per-channel length of the track.
func (t Track) Frames() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Library is the immutable unit swapped in by a load command: the tracks, the
// transition graph and the start track.
type Library struct {
	tracks []Track
	graph  Graph
	start  TrackID
}

// NewLibrary validates tracks and bundles them with graph and start.
//
// It fails with ErrInvalidTrackData when a track has no channels or ragged
// channel lengths, and with ErrUnknownTrack when start is not a track of a
// non-empty set. An empty track set is valid and plays silence.
//
// The sample slices are not copied; the caller must not modify them after
// the library has been loaded.
func NewLibrary(tracks []Track, start TrackID, graph Graph) (*Library, error) {
	for i, t := range tracks {
		if len(t) == 0 {
			return nil, fmt.Errorf("track %d has no channels: %w", i, ErrInvalidTrackData)
		}
		frames := len(t[0])
		for ch, samples := range t[1:] {
			if len(samples) != frames {
				return nil, fmt.Errorf("track %d channel %d has %d frames, want %d: %w",
					i, ch+1, len(samples), frames, ErrInvalidTrackData)
			}
		}
	}

	if len(tracks) > 0 && (start < 0 || int(start) >= len(tracks)) {
		return nil, fmt.Errorf("start track %v of %d: %w", start, len(tracks), ErrUnknownTrack)
	}
	if start < 0 {
		start = 0
	}

	return &Library{tracks: tracks, graph: graph, start: start}, nil
}

func (l *Library) Len() int       { return len(l.tracks) }
func (l *Library) Start() TrackID { return l.start }
func (l *Library) Graph() Graph   { return l.graph }

// Track returns the track with the given id.
func (l *Library) Track(id TrackID) (Track, bool) {
	if id < 0 || int(id) >= len(l.tracks) {
		return nil, false
	}
	return l.tracks[id], true
}
