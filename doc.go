// SPDX-License-Identifier: EPL-2.0

// Package trackplay plays a graph of audio tracks sample-accurately.
//
// A Player decodes a set of tracks up front, hands them to the real-time
// engine and then drives it with transport commands. Each track names the
// track that follows it, so a playlist can run straight through, loop on a
// section, or branch when the host calls Next while a track is playing.
//
// # Quick Start
//
//	cfg := trackplay.DefaultConfig()
//	cfg.Output = myDevice // or leave nil and pull blocks with Render
//
//	p := trackplay.New(cfg)
//	if err := p.Open(ctx); err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	err := p.LoadAll(ctx, []trackplay.TrackInfo{
//	    {Src: "intro.wav", Next: 1},
//	    {Src: "https://example.com/loop.ogg", Next: 1},
//	    {Src: "outro.mp3", Next: engine.NoTrack},
//	})
//	if err != nil {
//	    return err
//	}
//	_ = p.Play(ctx, 0)
//
//	// later, leave the loop for the outro once the current pass ends
//	_ = p.Next(ctx, 2, 1)
//
// # Supported Formats
//
// Sources are picked by TrackInfo.Format or by the file extension:
//   - WAV (16, 24 and 32-bit PCM) via formats/wav
//   - AIFF (16, 24 and 32-bit PCM) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Every track must already be at the player's sample rate; there is no
// resampling and a mismatch fails LoadAll with ErrSampleRateMismatch. A mono
// player downmixes multi-channel tracks. Otherwise output channel c plays
// track channel c modulo the track's channel count.
//
// # Fades
//
// Pause fades out over Config.FadeOut and resume fades in over
// Config.FadeIn. Both can be changed while playing with SetFadeInSeconds and
// SetFadeOutSeconds; a ramp already in progress keeps its length.
package trackplay
