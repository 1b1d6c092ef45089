// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"testing"
)

const gainTolerance = 1e-6

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= gainTolerance
}

func TestFadeEnvelope_ZeroValueIsUnity(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	for _, s := range []int{-10, 0, 1, 1000} {
		if g := f.FadeInGain(s); g != 1 {
			t.Errorf("FadeInGain(%d) = %v, want 1", s, g)
		}
		if g := f.FadeOutGain(s, false); g != 1 {
			t.Errorf("FadeOutGain(%d, false) = %v, want 1", s, g)
		}
	}
}

func TestFadeEnvelope_FadeInRamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration int
		anchor   int
	}{
		{name: "short", duration: 4, anchor: 0},
		{name: "anchored late", duration: 100, anchor: 250},
		{name: "one sample", duration: 1, anchor: 7},
		{name: "typical", duration: 441, anchor: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f FadeEnvelope
			f.SetFadeInSamples(tt.duration)
			f.StartFadeIn(tt.anchor)

			if g := f.FadeInGain(tt.anchor - 1); g != 0 {
				t.Errorf("FadeInGain(anchor-1) = %v, want 0", g)
			}
			if g := f.FadeInGain(tt.anchor); g != 0 {
				t.Errorf("FadeInGain(anchor) = %v, want 0", g)
			}

			prev := float32(0)
			for s := tt.anchor; s <= tt.anchor+tt.duration; s++ {
				g := f.FadeInGain(s)
				if g < prev {
					t.Fatalf("FadeInGain(%d) = %v, decreased from %v", s, g, prev)
				}
				want := float32(s-tt.anchor) / float32(tt.duration)
				if !approx(g, want) {
					t.Errorf("FadeInGain(%d) = %v, want %v", s, g, want)
				}
				prev = g
			}

			if !f.FadingIn() {
				t.Error("FadingIn() = false before the ramp is over")
			}
			for s := tt.anchor + tt.duration + 1; s < tt.anchor+tt.duration+10; s++ {
				if g := f.FadeInGain(s); g != 1 {
					t.Errorf("FadeInGain(%d) = %v, want 1", s, g)
				}
			}
			if f.FadingIn() {
				t.Error("FadingIn() = true after the ramp is over")
			}
		})
	}
}

func TestFadeEnvelope_FadeOutRamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration int
		anchor   int
	}{
		{name: "short", duration: 4, anchor: 0},
		{name: "anchored late", duration: 100, anchor: 250},
		{name: "typical", duration: 440, anchor: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f FadeEnvelope
			f.SetFadeOutSamples(tt.duration)
			f.StartFadeOut(tt.anchor, nil)

			if g := f.FadeOutGain(tt.anchor-1, true); g != 1 {
				t.Errorf("FadeOutGain(anchor-1) = %v, want 1", g)
			}

			prev := float32(1)
			for s := tt.anchor; s <= tt.anchor+tt.duration; s++ {
				g := f.FadeOutGain(s, true)
				if g > prev {
					t.Fatalf("FadeOutGain(%d) = %v, increased from %v", s, g, prev)
				}
				want := 1 - float32(s-tt.anchor)/float32(tt.duration)
				if !approx(g, want) {
					t.Errorf("FadeOutGain(%d) = %v, want %v", s, g, want)
				}
				prev = g
			}
			if g := f.FadeOutGain(tt.anchor, true); g != 1 {
				t.Errorf("FadeOutGain(anchor) = %v, want 1", g)
			}

			for s := tt.anchor + tt.duration + 1; s < tt.anchor+tt.duration+10; s++ {
				if g := f.FadeOutGain(s, true); g != 0 {
					t.Errorf("FadeOutGain(%d, paused) = %v, want 0", s, g)
				}
			}
			if f.FadingOut() {
				t.Error("FadingOut() = true after the ramp is over")
			}
		})
	}
}

func TestFadeEnvelope_ZeroDurationIsStep(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	f.StartFadeIn(10)
	if g := f.FadeInGain(9); g != 0 {
		t.Errorf("FadeInGain(9) = %v, want 0", g)
	}
	if g := f.FadeInGain(10); g != 1 {
		t.Errorf("FadeInGain(10) = %v, want 1", g)
	}

	f.StartFadeOut(10, nil)
	if g := f.FadeOutGain(9, true); g != 1 {
		t.Errorf("FadeOutGain(9) = %v, want 1", g)
	}
	if g := f.FadeOutGain(10, true); g != 0 {
		t.Errorf("FadeOutGain(10) = %v, want 0", g)
	}
}

func TestFadeEnvelope_CompletionFiresOnce(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	f.SetFadeOutSamples(2)

	calls := 0
	f.StartFadeOut(0, func() { calls++ })

	for s := range 5 {
		f.FadeOutGain(s, false)
	}
	if calls != 1 {
		t.Fatalf("completion ran %d times after the ramp, want 1", calls)
	}

	for s := 5; s < 10; s++ {
		if g := f.FadeOutGain(s, false); g != 1 {
			t.Errorf("FadeOutGain(%d) = %v, want 1", s, g)
		}
	}
	if calls != 1 {
		t.Errorf("completion ran %d times, want 1", calls)
	}
}

func TestFadeEnvelope_CompletionWaitsWhilePaused(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	calls := 0
	f.StartFadeOut(0, func() { calls++ })

	f.FadeOutGain(0, true)
	if g := f.FadeOutGain(1, true); g != 0 {
		t.Errorf("FadeOutGain(1, paused) = %v, want 0", g)
	}
	if calls != 0 {
		t.Fatalf("completion ran while paused")
	}

	f.FadeOutGain(2, false)
	if calls != 1 {
		t.Errorf("completion ran %d times, want 1", calls)
	}
}

func TestFadeEnvelope_NegativeDurationClamps(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	f.SetFadeInSamples(-5)
	f.SetFadeOutSamples(-1)

	if f.FadeInSamples() != 0 || f.FadeOutSamples() != 0 {
		t.Errorf("durations = %d, %d, want 0, 0", f.FadeInSamples(), f.FadeOutSamples())
	}
}

func TestFadeEnvelope_DurationIsNotRetroactive(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	f.SetFadeInSamples(10)
	f.StartFadeIn(0)
	f.SetFadeInSamples(100)

	if g := f.FadeInGain(5); !approx(g, 0.5) {
		t.Errorf("FadeInGain(5) = %v, want 0.5", g)
	}
}

func TestFadeEnvelope_Rebase(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	f.SetFadeInSamples(20)
	f.StartFadeIn(95)
	f.Rebase(100)

	// sample 0 of the next track is sample 100 of the old timeline
	if g := f.FadeInGain(0); !approx(g, 5.0/20) {
		t.Errorf("FadeInGain(0) after Rebase = %v, want 0.25", g)
	}

	f.Reset()
	f.Rebase(100)
	if g := f.FadeInGain(0); g != 1 {
		t.Errorf("FadeInGain(0) after Reset = %v, want 1", g)
	}
}

func TestFadeEnvelope_EndFadeOut(t *testing.T) {
	t.Parallel()

	var f FadeEnvelope
	f.SetFadeOutSamples(100)

	calls := 0
	f.StartFadeOut(0, func() { calls++ })
	f.FadeOutGain(10, false)
	f.EndFadeOut()

	if f.FadingOut() {
		t.Fatal("FadingOut() = true after EndFadeOut")
	}
	if g := f.FadeOutGain(11, true); g != 0 {
		t.Errorf("FadeOutGain(11, paused) = %v, want 0", g)
	}
	if calls != 0 {
		t.Fatal("completion ran while paused")
	}
	f.FadeOutGain(12, false)
	if calls != 1 {
		t.Errorf("completion ran %d times, want 1", calls)
	}
}
