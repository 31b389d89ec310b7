package grove

import "testing"

func TestDrawStateLabelText(t *testing.T) {
	f, _, _ := newTestFile(t, "src/file.cpp", 3)
	if ds := f.DrawState(); ds.Label != "file.cpp" {
		t.Errorf("Label = %q, want file.cpp", ds.Label)
	}

	f.settings.ShowExtensions = true
	if ds := f.DrawState(); ds.Label != "cpp" {
		t.Errorf("Label = %q, want cpp", ds.Label)
	}

	f.SetSelected(true)
	ds := f.DrawState()
	if ds.Label != "file.cpp" || ds.LabelSize != LabelLarge {
		t.Errorf("selected: Label = %q size = %v", ds.Label, ds.LabelSize)
	}
	if !ds.ShowLabel || ds.LabelAlpha != 1 {
		t.Error("selected label should always show at full alpha")
	}
}

func TestDrawStateExtensionlessFallsBackToName(t *testing.T) {
	f, _, _ := newTestFile(t, "Makefile", 3)
	f.settings.ShowExtensions = true
	if ds := f.DrawState(); ds.Label != "Makefile" {
		t.Errorf("Label = %q, want Makefile", ds.Label)
	}
}

func TestDrawStateLabelFades(t *testing.T) {
	f, _, d := newTestFile(t, "a.go", 10)
	d.pos = Vec2{100, 50}
	f.SetPosition(Vec2{1, 2})
	f.SetDestination(Vec2{})
	f.Touch(ColorAdd)
	run(f, 2, 0.5) // fade-in done, file at its target, name up for 3 more seconds

	ds := f.DrawState()
	if ds.Position != (Vec2{100, 50}) {
		t.Errorf("Position = %v, want the anchor (100, 50)", ds.Position)
	}
	if ds.Alpha != 1 || !ds.ShowLabel || ds.LabelAlpha != 1 {
		t.Errorf("t=1: alpha=%v show=%v labelAlpha=%v", ds.Alpha, ds.ShowLabel, ds.LabelAlpha)
	}
	if ds.Diameter != 8 {
		t.Errorf("Diameter = %v, want 8", ds.Diameter)
	}

	run(f, 6, 0.5) // t=4, name interval elapsed
	ds = f.DrawState()
	if ds.ShowLabel {
		t.Errorf("label should be hidden once the name timer runs out, labelAlpha=%v", ds.LabelAlpha)
	}
}
