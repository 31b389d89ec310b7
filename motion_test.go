package grove

import (
	"math"
	"testing"
)

const eps = 1e-9

func newMovingFile(t *testing.T) *File {
	t.Helper()
	f := NewFile("src/a.go", ColorWhite, Vec2{}, 0, NewRegistry(), nil)
	NewDir("src/", Vec2{}, 8).AddFile(f)
	return f
}

func TestSeekStepScenario(t *testing.T) {
	f := newMovingFile(t)
	f.SetDestination(Vec2{1, 0})
	f.SetDistance(10)
	f.SetSpeed(5)

	f.move(0.1)

	p := f.Position()
	if math.Abs(p.X-5) > eps || math.Abs(p.Y) > eps {
		t.Errorf("Position = %v, want (5, 0)", p)
	}
}

func TestSeekStepClampsToTarget(t *testing.T) {
	f := newMovingFile(t)
	f.SetDestination(Vec2{1, 0})
	f.SetDistance(10)
	f.SetSpeed(5)

	f.move(1)

	if p := f.Position(); p != (Vec2{10, 0}) {
		t.Errorf("Position = %v, want exactly (10, 0)", p)
	}
}

func TestSeekStepNeverOvershoots(t *testing.T) {
	target := Vec2{3, -4}
	for _, dt := range []float64{0, 0.001, 0.05, 0.1, 0.19, 0.2, 0.5, 1, 10} {
		pos := Vec2{-7, 2}
		for i := 0; i < 20; i++ {
			before := target.Sub(pos).Len()
			pos = pos.Add(seekStep(pos, target, 5, dt))
			after := target.Sub(pos).Len()
			if after > before+eps {
				t.Fatalf("dt=%v frame %d: distance grew from %v to %v", dt, i, before, after)
			}
		}
	}
}

func TestMoveHasNoMomentum(t *testing.T) {
	f := newMovingFile(t)
	f.SetDestination(Vec2{1, 0})
	f.SetDistance(10)
	f.SetSpeed(5)
	f.move(0.1) // (5, 0)

	// Retarget behind the file: the next step must head straight there.
	f.SetDestination(Vec2{0, 0})
	f.move(0.1)

	p := f.Position()
	if math.Abs(p.X-2.5) > eps || math.Abs(p.Y) > eps {
		t.Errorf("Position = %v, want (2.5, 0)", p)
	}
}

func TestAbsolutePosition(t *testing.T) {
	f := NewFile("src/a.go", ColorWhite, Vec2{1, 2}, 0, NewRegistry(), nil)
	d := NewDir("src/", Vec2{10, 20}, 8)
	d.AddFile(f)

	if p := f.AbsolutePosition(); p != (Vec2{11, 22}) {
		t.Errorf("AbsolutePosition = %v, want (11, 22)", p)
	}

	d.SetPosition(Vec2{-1, -1})
	if p := f.AbsolutePosition(); p != (Vec2{0, 1}) {
		t.Errorf("AbsolutePosition after move = %v, want (0, 1)", p)
	}
}

func TestAbsolutePositionWithoutDirPanics(t *testing.T) {
	f := NewFile("a.go", ColorWhite, Vec2{}, 0, NewRegistry(), nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	f.AbsolutePosition()
}

func TestTarget(t *testing.T) {
	f := newMovingFile(t)
	f.SetDestination(Vec2{0.6, 0.8})
	f.SetDistance(5)
	if got := f.Target(); math.Abs(got.X-3) > eps || math.Abs(got.Y-4) > eps {
		t.Errorf("Target = %v, want (3, 4)", got)
	}
}
