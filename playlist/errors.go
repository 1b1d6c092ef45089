// SPDX-License-Identifier: EPL-2.0

package playlist

import "errors"

var (
	ErrEmpty         = errors.New("playlist has no tracks")
	ErrBadSuccessor  = errors.New("next names a track outside the playlist")
	ErrBadStart      = errors.New("start names a track outside the playlist")
	ErrMissingSource = errors.New("track has no src")
	ErrBadFade       = errors.New("fade duration is negative")
)
