package grove

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeWindow is the length, in seconds, of both the touch highlight decay
// and the idle alpha fade.
const fadeWindow = 1.0

// fadeProgress maps t seconds into a window of length d onto [0, 1] through
// the easing function. Values outside the window clamp to its ends.
func fadeProgress(t, d float64, fn ease.TweenFunc) float64 {
	if fn == nil {
		fn = ease.Linear
	}
	if t <= 0 {
		return 0
	}
	if t >= d {
		return 1
	}
	return float64(fn(float32(t), 0, 1, float32(d)))
}

// Fade animates a single float64 field toward a target value. The file
// spawn fade-in is built on it; callers Update it once per frame.
type Fade struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// NewFade creates a Fade that moves *field to the target over duration
// seconds using the easing function.
func NewFade(field *float64, to float64, duration float32, fn ease.TweenFunc) *Fade {
	if fn == nil {
		fn = ease.Linear
	}
	return &Fade{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the fade by dt seconds and writes the current value.
func (f *Fade) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	*f.field = float64(val)
	f.Done = finished
}
