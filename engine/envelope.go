// SPDX-License-Identifier: EPL-2.0

package engine

// ramp is one linear sub-envelope, in samples. span is the duration captured
// when the ramp was anchored.
type ramp struct {
	duration int
	span     int
	anchor   int
	active   bool
}

func (r *ramp) start(at int) {
	r.anchor = at
	r.span = r.duration
	r.active = true
}

// over reports whether sample is past the end of the ramp.
func (r *ramp) over(sample int) bool {
	return r.span == 0 || sample > r.anchor+r.span
}

// progress returns how far sample is into the ramp, in [0, 1].
func (r *ramp) progress(sample int) float32 {
	p := float64(sample-r.anchor) / float64(r.span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return float32(p)
}

// FadeEnvelope computes the gain applied to every output sample. It holds a
// fade-in and a fade-out ramp that are anchored and evaluated independently.
//
// The zero value is ready to use: both durations are 0 and both ramps are
// inactive, so every gain is 1.
type FadeEnvelope struct {
	in  ramp
	out ramp

	// one-shot action fired by FadeOutGain once the fade-out is over
	onComplete func()
}

// SetFadeInSamples sets the fade-in duration. It applies to the next
// StartFadeIn, not to a ramp already in progress.
func (f *FadeEnvelope) SetFadeInSamples(n int) {
	f.in.duration = max(n, 0)
}

// SetFadeOutSamples sets the fade-out duration. It applies to the next
// StartFadeOut, not to a ramp already in progress.
func (f *FadeEnvelope) SetFadeOutSamples(n int) {
	f.out.duration = max(n, 0)
}

func (f *FadeEnvelope) FadeInSamples() int  { return f.in.duration }
func (f *FadeEnvelope) FadeOutSamples() int { return f.out.duration }

// FadingIn reports whether the fade-in ramp is active.
func (f *FadeEnvelope) FadingIn() bool { return f.in.active }

// FadingOut reports whether the fade-out ramp is active.
func (f *FadeEnvelope) FadingOut() bool { return f.out.active }

// StartFadeIn anchors the fade-in ramp at sample.
func (f *FadeEnvelope) StartFadeIn(at int) {
	f.in.start(at)
}

// StartFadeOut anchors the fade-out ramp at sample. onComplete, when not nil,
// runs once on the first FadeOutGain call made after the ramp is over while
// not paused.
func (f *FadeEnvelope) StartFadeOut(at int, onComplete func()) {
	f.out.start(at)
	f.onComplete = onComplete
}

// CancelFadeOut drops an in-progress fade-out together with its pending
// completion action.
func (f *FadeEnvelope) CancelFadeOut() {
	f.out.active = false
	f.onComplete = nil
}

// EndFadeOut finishes an in-progress fade-out early: the ramp deactivates as
// if it were over, and its completion action stays pending for the next
// FadeOutGain call.
func (f *FadeEnvelope) EndFadeOut() {
	f.out.active = false
}

// Reset deactivates both ramps and drops the completion action. Durations
// are kept.
func (f *FadeEnvelope) Reset() {
	f.in.active = false
	f.out.active = false
	f.onComplete = nil
}

// Rebase shifts active anchors back by n samples. It keeps a ramp continuous
// when the head moves from the end of an n-sample track to offset 0 of the
// next one.
func (f *FadeEnvelope) Rebase(n int) {
	if f.in.active {
		f.in.anchor -= n
	}
	if f.out.active {
		f.out.anchor -= n
	}
}

// FadeInGain returns the fade-in gain at sample: 0 before the anchor, a linear
// ramp from 0 to 1 over the fade-in duration, and 1 once the ramp is over, at
// which point the ramp deactivates.
func (f *FadeEnvelope) FadeInGain(sample int) float32 {
	if !f.in.active {
		return 1
	}
	if sample < f.in.anchor {
		return 0
	}
	if f.in.over(sample) {
		f.in.active = false
		return 1
	}
	return f.in.progress(sample)
}

// FadeOutGain returns the fade-out gain at sample: 1 before the anchor, a
// linear ramp from 1 to 0 over the fade-out duration, and 0 once the ramp is
// over, at which point the ramp deactivates.
//
// With the ramp inactive the gain is 0 while paused and 1 otherwise; in the
// latter case the pending completion action fires, exactly once.
func (f *FadeEnvelope) FadeOutGain(sample int, paused bool) float32 {
	if !f.out.active {
		if paused {
			return 0
		}
		if done := f.onComplete; done != nil {
			f.onComplete = nil
			done()
		}
		return 1
	}
	if sample < f.out.anchor {
		return 1
	}
	if f.out.over(sample) {
		f.out.active = false
		return 0
	}
	return 1 - f.out.progress(sample)
}
