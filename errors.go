// SPDX-License-Identifier: EPL-2.0

package trackplay

import "errors"

var (
	// ErrNotOpen indicates a call made before Open or after Close
	ErrNotOpen = errors.New("player is not open")

	// ErrSampleRateMismatch indicates a track at a rate other than the player's
	ErrSampleRateMismatch = errors.New("track sample rate does not match the player")

	// ErrUnsupportedFormat indicates no registered decoder for a track
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrFetchFailed indicates an HTTP source answered with a non-2xx status
	ErrFetchFailed = errors.New("fetching track failed")

	// ErrOutputAttached indicates Render on a player that feeds a device
	ErrOutputAttached = errors.New("player output is attached to a device")
)
