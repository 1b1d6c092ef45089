// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV audio.
//
// Decoding goes through github.com/go-audio/wav and accepts integer PCM at
// 16, 24 or 32 bits with any channel count and sample rate. Samples come out
// of the returned audio.Source as interleaved float32 in [-1, 1).
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	tracks, err := audio.Collect(src, 0)
//
// Inputs that cannot seek are buffered in memory first.
//
// WriteWAV16 writes a canonical 44-byte header followed by interleaved
// 16-bit samples. It is what the render command uses to save engine output.
//
// # Errors
//
//   - ErrNotWavFile: the input is not RIFF/WAVE
//   - ErrOnlyPCMSupported: compressed or floating point encoding
//   - ErrUnsupportedBitDepth: integer PCM at a depth other than 16, 24 or 32
//   - ErrUnsupportedWavLayout: no channels or no sample rate
package wav
