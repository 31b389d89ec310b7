package grove

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeProgressBounds(t *testing.T) {
	if v := fadeProgress(-1, 1, ease.Linear); v != 0 {
		t.Errorf("before window = %v, want 0", v)
	}
	if v := fadeProgress(2, 1, ease.Linear); v != 1 {
		t.Errorf("after window = %v, want 1", v)
	}
	if v := fadeProgress(0.25, 1, nil); math.Abs(v-0.25) > 1e-6 {
		t.Errorf("nil ease = %v, want linear 0.25", v)
	}
}

func TestFadeProgressEasing(t *testing.T) {
	lin := fadeProgress(0.5, 1, ease.Linear)
	quad := fadeProgress(0.5, 1, ease.InQuad)
	if quad >= lin {
		t.Errorf("InQuad midpoint %v should lag linear %v", quad, lin)
	}
}

func TestFadeReachesTarget(t *testing.T) {
	v := 0.0
	f := NewFade(&v, 1, 1.0, ease.Linear)

	f.Update(0.5)
	if math.Abs(v-0.5) > 1e-6 {
		t.Errorf("mid value = %v, want 0.5", v)
	}
	f.Update(0.5)
	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if v != 1 {
		t.Errorf("value = %v, want 1", v)
	}

	v = 3
	f.Update(1)
	if v != 3 {
		t.Error("Update after Done must not write")
	}
}

func TestDisplayColorUsesConfiguredEase(t *testing.T) {
	f, _, _ := newTestFile(t, "a.go", 3)
	f.settings.FadeEase = ease.InQuad
	f.Touch(Color{1, 0, 0})
	run(f, 1, 0.5)

	// InQuad at half time is a quarter of the way to the base color.
	if want := (Color{0.75, 0, 0.25}); !colorNear(f.DisplayColor(), want) {
		t.Errorf("DisplayColor = %v, want %v", f.DisplayColor(), want)
	}
}
