package grove

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelSize selects a label font variant.
type LabelSize uint8

const (
	LabelSmall LabelSize = iota // unselected files
	LabelLarge                  // selected files
)

// Labeler draws a file's name. Each file holds its own labeler and releases
// it when disposed.
type Labeler interface {
	SetSize(size LabelSize)
	Size() LabelSize
	// Draw renders s with its top-left corner at (x, y).
	Draw(dst *ebiten.Image, s string, x, y float64, c Color, alpha float64)
	// Release returns the labeler to its source. It must not be used after.
	Release()
}

// FontManager loads a TrueType font once at two sizes and hands out
// reference-counted labelers drawing with it.
type FontManager struct {
	source *text.GoTextFaceSource
	small  *text.GoTextFace
	large  *text.GoTextFace
	refs   int
}

// NewFontManager parses TTF/OTF data and prepares the small and large faces.
func NewFontManager(ttfData []byte, smallSize, largeSize float64) (*FontManager, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("grove: failed to parse TTF data: %w", err)
	}
	return &FontManager{
		source: source,
		small:  &text.GoTextFace{Source: source, Size: smallSize},
		large:  &text.GoTextFace{Source: source, Size: largeSize},
	}, nil
}

// Grab returns a new labeler using the small face.
func (m *FontManager) Grab() Labeler {
	m.refs++
	return &ttfLabeler{manager: m, face: m.small}
}

// Refs returns the number of labelers not yet released.
func (m *FontManager) Refs() int {
	return m.refs
}

// Face returns the face used for the given size.
func (m *FontManager) Face(size LabelSize) *text.GoTextFace {
	if size == LabelLarge {
		return m.large
	}
	return m.small
}

// MeasureString returns the rendered size of s at the given label size.
func (m *FontManager) MeasureString(s string, size LabelSize) (width, height float64) {
	face := m.Face(size)
	mt := face.Metrics()
	return text.Measure(s, face, mt.HAscent+mt.HDescent+mt.HLineGap)
}

type ttfLabeler struct {
	manager  *FontManager
	face     *text.GoTextFace
	size     LabelSize
	released bool
}

func (l *ttfLabeler) SetSize(size LabelSize) {
	l.size = size
	l.face = l.manager.Face(size)
}

func (l *ttfLabeler) Size() LabelSize {
	return l.size
}

func (l *ttfLabeler) Draw(dst *ebiten.Image, s string, x, y float64, c Color, alpha float64) {
	if l.released {
		panic("grove: Draw on released labeler")
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(int(x)), float64(int(y)))
	op.ColorScale.ScaleWithColor(c.RGBA(alpha))
	text.Draw(dst, s, l.face, op)
}

func (l *ttfLabeler) Release() {
	if l.released {
		return
	}
	l.released = true
	l.manager.refs--
}
