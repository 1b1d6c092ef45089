// SPDX-License-Identifier: EPL-2.0

// Package engine implements the sample-accurate playback engine.
//
// An Engine plays a Library of pre-decoded tracks back to back, following the
// successor links of a Graph, and shapes its output with a FadeEnvelope at
// pause and resume boundaries.
//
// # Real-time Contract
//
// Process is called from exactly one real-time context (an audio callback) at
// a fixed block size. It never blocks, allocates or performs I/O:
//
//	out := [][]float32{make([]float32, 512), make([]float32, 512)}
//	for {
//	    e.Process(out)
//	    // hand out to the device
//	}
//
// # Commands
//
// Every other goroutine talks to the engine only through commands. Commands
// are queued and then drained and applied, in arrival order, at the start of
// the next Process call, so no block ever observes a partially applied
// command:
//
//	e := engine.New(engine.Options{QueueSize: 64})
//	e.Ready()
//
//	lib, err := engine.NewLibrary(tracks, 0, engine.GraphFromList(next))
//	if err != nil {
//	    return err // ErrInvalidTrackData
//	}
//	_ = e.Send(ctx, engine.Load(lib))
//	_ = e.Send(ctx, engine.Play(engine.NoTrack))
//
// Commands sent before Ready fail with ErrNotReady.
//
// # Fades
//
// Pause anchors a linear fade-out at the current head and resume anchors a
// linear fade-in. Durations are set in samples with SetFadeIn and SetFadeOut
// and persist across plays. Stop is a hard cut unless Options.FadeOnStop is
// set, in which case it fades out first and resets once the ramp completes.
package engine
