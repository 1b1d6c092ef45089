// SPDX-License-Identifier: EPL-2.0

package engine

// Kind tags a Command.
type Kind uint8

const (
	CmdUnknown Kind = iota
	CmdLoad
	CmdPlay
	CmdStop
	CmdPause
	CmdResume
	CmdNext
	CmdSetFadeIn
	CmdSetFadeOut
)

var kindNames = [...]string{
	CmdUnknown:    "unknown",
	CmdLoad:       "load",
	CmdPlay:       "play",
	CmdStop:       "stop",
	CmdPause:      "pause",
	CmdResume:     "resume",
	CmdNext:       "next",
	CmdSetFadeIn:  "setFadeIn",
	CmdSetFadeOut: "setFadeOut",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[CmdUnknown]
}

// Command is a tagged union of everything the control side can ask of an
// Engine. Only the fields of its Kind are meaningful; build commands with the
// constructors below.
type Command struct {
	Kind Kind

	// CmdLoad
	Library *Library

	// CmdPlay: track to seek to, or NoTrack. CmdNext: the new successor.
	Track TrackID

	// CmdNext: apply only while this track is playing; NoTrack applies
	// unconditionally.
	CurrentIs TrackID

	// CmdSetFadeIn, CmdSetFadeOut
	Samples int
}

// Load replaces the tracks, graph and start track and rewinds the head.
func Load(lib *Library) Command {
	return Command{Kind: CmdLoad, Library: lib, Track: NoTrack, CurrentIs: NoTrack}
}

// Play starts playback. A start other than NoTrack seeks to its offset 0
// first.
func Play(start TrackID) Command {
	return Command{Kind: CmdPlay, Track: start, CurrentIs: NoTrack}
}

// Stop halts playback and rewinds the head to the start track.
func Stop() Command {
	return Command{Kind: CmdStop, Track: NoTrack, CurrentIs: NoTrack}
}

func Pause() Command {
	return Command{Kind: CmdPause, Track: NoTrack, CurrentIs: NoTrack}
}

func Resume() Command {
	return Command{Kind: CmdResume, Track: NoTrack, CurrentIs: NoTrack}
}

// Next overrides the successor of the playing track. It is discarded when
// currentIs is not NoTrack and differs from the playing track at the time the
// command is applied.
func Next(next, currentIs TrackID) Command {
	return Command{Kind: CmdNext, Track: next, CurrentIs: currentIs}
}

func SetFadeIn(samples int) Command {
	return Command{Kind: CmdSetFadeIn, Track: NoTrack, CurrentIs: NoTrack, Samples: samples}
}

func SetFadeOut(samples int) Command {
	return Command{Kind: CmdSetFadeOut, Track: NoTrack, CurrentIs: NoTrack, Samples: samples}
}
