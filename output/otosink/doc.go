// SPDX-License-Identifier: EPL-2.0

// Package otosink plays engine output on the default sound device through
// github.com/ebitengine/oto/v3.
//
// oto pulls audio from an io.Reader on its own goroutine. Reader is that
// io.Reader: each time it runs dry it asks the processor for one block of
// planar samples, interleaves it and encodes it as float32 little-endian.
// Block boundaries, and with them the points at which queued commands take
// effect, do not depend on how many bytes oto asks for at a time.
package otosink
