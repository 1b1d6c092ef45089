// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a RIFF/WAVE stream
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a header without usable channels or rate
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCMSupported indicates a compressed or floating point encoding
	ErrOnlyPCMSupported = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedBitDepth indicates a PCM bit depth other than 16, 24 or 32
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidChannels indicates a writer channel count below 1
	ErrInvalidChannels = errors.New("channel count must be positive")
)
