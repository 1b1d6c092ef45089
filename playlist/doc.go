// SPDX-License-Identifier: EPL-2.0

// Package playlist reads track graphs from YAML.
//
// A playlist lists tracks in order; a track's id is its position. next names
// the track that follows, and a missing or null next ends playback there:
//
//	start: 0
//	fade_in: 0.05
//	fade_out: 0.3
//	tracks:
//	  - src: intro.wav
//	    next: 1
//	  - src: https://example.com/loop.ogg
//	    next: 1
//	  - src: outro.mp3
//	    format: mp3
//
// Relative paths are resolved against the playlist's directory by Load.
package playlist
