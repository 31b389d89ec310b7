package grove

import (
	"github.com/cespare/xxhash/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HashColor derives a stable color from a categorical tag such as a file
// extension. Equal tags always yield equal colors; distinct tags may collide.
func HashColor(tag string) Color {
	h := xxhash.Sum64String(tag)
	if h == 0 {
		h++
	}
	r := (h / 7) % 255
	g := (h / 3) % 255
	b := h % 255
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// RestingColor is the color of a file that has not been touched recently:
// the hash of its extension, or white when it has none.
func RestingColor(ext string) Color {
	if ext == "" {
		return ColorWhite
	}
	return HashColor(ext)
}

// ParseHexColor parses a 6 digit hex color with or without a leading '#'.
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return FromColorful(c), nil
}

// Colourize resets the file's resting color from its extension.
func (f *File) Colourize() {
	f.baseColor = RestingColor(f.ext)
}

// BaseColor returns the file's resting color.
func (f *File) BaseColor() Color {
	return f.baseColor
}

// SetBaseColor overrides the file's resting color.
func (f *File) SetBaseColor(c Color) {
	f.baseColor = c
}

// TouchColor returns the color of the file's last touch.
func (f *File) TouchColor() Color {
	return f.touchColor
}

// DisplayColor returns the color the file is drawn with this frame. Selected
// files are white. Within a second of a touch the touch color decays into
// the resting color.
func (f *File) DisplayColor() Color {
	if f.selected {
		return ColorWhite
	}

	lc := f.elapsed - f.lastAction
	if lc < fadeWindow {
		return f.touchColor.Lerp(f.baseColor, fadeProgress(lc, fadeWindow, f.settings.FadeEase))
	}
	return f.baseColor
}

// DisplayAlpha returns the file's opacity this frame. Past the idle time the
// file fades to zero over one second, on top of the entity fade-in.
func (f *File) DisplayAlpha() float64 {
	alpha := f.baseAlpha()

	idle := f.elapsed - f.lastAction - f.settings.IdleTime
	if idle > 0 {
		alpha *= 1 - fadeProgress(idle, fadeWindow, f.settings.FadeEase)
	}
	return alpha
}

// NameColor returns the label color.
func (f *File) NameColor() Color {
	if f.selected {
		return selectedNameColor
	}
	return ColorWhite
}

var selectedNameColor = Color{1, 1, 0.3}
