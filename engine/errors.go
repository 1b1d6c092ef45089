// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidTrackData = errors.New("invalid track data")
	ErrUnknownTrack     = errors.New("unknown track")
	ErrNotReady         = errors.New("engine is not ready")
	ErrQueueFull        = errors.New("command queue is full")
)
