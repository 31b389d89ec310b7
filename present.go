package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// labelAlphaCutoff hides labels of unselected files that are nearly invisible.
const labelAlphaCutoff = 0.01

// DrawState is everything needed to draw a file for one frame.
type DrawState struct {
	Position Vec2 // absolute
	Diameter float64
	Color    Color
	Alpha    float64

	Label      string
	LabelSize  LabelSize
	LabelColor Color
	LabelAlpha float64
	ShowLabel  bool
}

// DrawState assembles the file's per-frame presentation.
// Panics if the file has no parent container.
func (f *File) DrawState() DrawState {
	alpha := f.DisplayAlpha()

	ds := DrawState{
		Position:   f.AbsolutePosition(),
		Diameter:   f.settings.FileDiameter,
		Color:      f.DisplayColor(),
		Alpha:      alpha,
		Label:      f.labelText(),
		LabelColor: f.NameColor(),
	}

	if f.selected {
		ds.LabelSize = LabelLarge
		ds.LabelAlpha = 1
		ds.ShowLabel = true
		return ds
	}

	ds.LabelSize = LabelSmall
	ds.LabelAlpha = alpha * f.nameAlpha()
	ds.ShowLabel = ds.LabelAlpha > labelAlphaCutoff
	return ds
}

func (f *File) labelText() string {
	if f.selected || !f.settings.ShowExtensions || f.ext == "" {
		return f.name
	}
	return f.ext
}

// DrawFile draws f onto dst, shifted by offset. Hidden files are skipped.
func DrawFile(dst *ebiten.Image, f *File, offset Vec2) {
	if f.IsHidden() {
		return
	}
	ds := f.DrawState()
	p := ds.Position.Add(offset)

	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(ds.Diameter/2), ds.Color.RGBA(ds.Alpha), true)

	if !ds.ShowLabel || f.label == nil {
		return
	}
	lx := p.X + ds.Diameter
	ly := p.Y - ds.Diameter
	f.label.Draw(dst, ds.Label, lx+1, ly+1, ColorBlack, ds.LabelAlpha*0.7)
	f.label.Draw(dst, ds.Label, lx, ly, ds.LabelColor, ds.LabelAlpha)
}
