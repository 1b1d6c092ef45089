// SPDX-License-Identifier: EPL-2.0

package engine

import "sync/atomic"

// State is the playback state: where the head is and what plays next.
//
// Offset stays within [0, Frames] of the current track between blocks.
type State struct {
	Current     TrackID
	Offset      int
	Start       TrackID
	Playing     bool
	Paused      bool
	PendingNext TrackID
}

// Stopped reports whether playback is stopped, paused or not.
func (s State) Stopped() bool { return !s.Playing }

// rewind moves the head to the start track and takes its successor from g.
func (s *State) rewind(g Graph) {
	s.Current = s.Start
	s.Offset = 0
	s.PendingNext = g.Next(s.Start)
}

// published mirrors State for readers outside the real-time goroutine. Each
// field is individually atomic; a reader racing a block may see fields from
// two consecutive blocks.
type published struct {
	current atomic.Int64
	offset  atomic.Int64
	start   atomic.Int64
	pending atomic.Int64
	playing atomic.Bool
	paused  atomic.Bool
}

func (p *published) store(s *State) {
	p.current.Store(int64(s.Current))
	p.offset.Store(int64(s.Offset))
	p.start.Store(int64(s.Start))
	p.pending.Store(int64(s.PendingNext))
	p.playing.Store(s.Playing)
	p.paused.Store(s.Paused)
}

func (p *published) load() State {
	return State{
		Current:     TrackID(p.current.Load()),
		Offset:      int(p.offset.Load()),
		Start:       TrackID(p.start.Load()),
		Playing:     p.playing.Load(),
		Paused:      p.paused.Load(),
		PendingNext: TrackID(p.pending.Load()),
	}
}
