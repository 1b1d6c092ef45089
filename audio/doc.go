// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decode side of a player: streaming sources,
// the decoder registry and helpers that turn a stream into a decoded track.
//
// # Source Interface
//
// Decoders produce a Source, a stream of interleaved float32 samples in
// [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// # Collecting
//
// The playback engine works on whole tracks held in memory, one slice per
// channel. Collect drains a Source into that layout:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	chans, err := audio.Collect(src, 0)
//	// chans[c][i] is frame i of channel c
//
// # Channel Mixing
//
// MonoMixer averages every frame of a multi-channel Source down to one
// channel, for mono outputs:
//
//	chans, err := audio.Collect(audio.NewMonoMixer(src), 0)
//
// # Integer PCM
//
// IntSource turns a go-audio decoder (wav, aiff) into a Source, scaling its
// integer samples by the bit depth.
//
// # Format Registry
//
// The registry maps a format name or file extension to its decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Lookup("intro.WAV")
//
// # Error Handling
//
// Sources return io.EOF once the stream is over:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
