package grove

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vec2 is a 2D vector used for positions, offsets and directions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len2 returns the squared length of v.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// ColorWhite is the neutral color used for untagged files and selection.
var ColorWhite = Color{1, 1, 1}

// ColorBlack is used for label drop shadows.
var ColorBlack = Color{0, 0, 0}

// Lerp blends c toward o by t in RGB space. t=0 yields c, t=1 yields o.
func (c Color) Lerp(o Color, t float64) Color {
	return FromColorful(c.Colorful().BlendRgb(o.Colorful(), t))
}

// Colorful converts c to a go-colorful color for further color math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful converts a go-colorful color back to a Color.
func FromColorful(c colorful.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// RGBA returns c as a non-premultiplied color with the given alpha, suitable
// for ebiten draw calls.
func (c Color) RGBA(alpha float64) color.NRGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
