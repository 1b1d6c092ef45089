// SPDX-License-Identifier: EPL-2.0

package engine

import "strconv"

// TrackID identifies a track by its index in a Library.
type TrackID int

// NoTrack is the null track id: the end of the graph, or "not given" when
// used as an optional command argument.
const NoTrack TrackID = -1

func (id TrackID) String() string {
	if id < 0 {
		return "none"
	}
	return strconv.Itoa(int(id))
}

// Graph maps every track to its automatic successor. It is immutable once
// built; self-references and cycles are legal and make playback loop.
type Graph struct {
	next []TrackID
}

// NewGraph builds a graph for tracks [0, n) from a sparse transition map.
// Tracks missing from transitions, and negative successors, map to NoTrack.
// Entries for ids outside [0, n) are dropped. Successors are not checked
// against n: an unknown successor ends playback when it is reached.
func NewGraph(n int, transitions map[TrackID]TrackID) Graph {
	g := Graph{next: make([]TrackID, max(n, 0))}
	for i := range g.next {
		g.next[i] = NoTrack
	}
	for id, next := range transitions {
		if id < 0 || int(id) >= len(g.next) {
			continue
		}
		if next < 0 {
			next = NoTrack
		}
		g.next[id] = next
	}
	return g
}

// GraphFromList builds a graph where track i is followed by next[i].
func GraphFromList(next []TrackID) Graph {
	g := Graph{next: make([]TrackID, len(next))}
	for i, id := range next {
		if id < 0 {
			id = NoTrack
		}
		g.next[i] = id
	}
	return g
}

// Next returns the successor of id, or NoTrack.
func (g Graph) Next(id TrackID) TrackID {
	if id < 0 || int(id) >= len(g.next) {
		return NoTrack
	}
	return g.next[id]
}

// Len returns the number of tracks the graph covers.
func (g Graph) Len() int { return len(g.next) }
