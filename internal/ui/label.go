// internal/ui/label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Label is a single line of text.
// Без Centered (X, Y) задаёт левый верхний угол, иначе центр строки.
type Label struct {
	X, Y     int
	Text     string
	Color    color.Color
	Centered bool
	face     font.Face
}

// NewLabel создает новую надпись.
func NewLabel(x, y int, s string, face font.Face, clr color.Color) *Label {
	return &Label{X: x, Y: y, Text: s, Color: clr, face: face}
}

// NewCenteredLabel creates a label whose (x, y) is the middle of the rendered text.
func NewCenteredLabel(x, y int, s string, face font.Face, clr color.Color) *Label {
	l := NewLabel(x, y, s, face, clr)
	l.Centered = true
	return l
}

// Origin returns the baseline point passed to text.Draw.
func (l *Label) Origin() (int, int) {
	if !l.Centered {
		return l.X, l.Y + l.face.Metrics().Ascent.Ceil()
	}
	b := text.BoundString(l.face, l.Text)
	return l.X - b.Min.X - b.Dx()/2, l.Y - b.Min.Y - b.Dy()/2
}

// Draw отрисовывает надпись заданным цветом.
func (l *Label) Draw(screen *ebiten.Image) {
	l.DrawColor(screen, l.Color)
}

func (l *Label) DrawColor(screen *ebiten.Image, clr color.Color) {
	if l.Text == "" {
		return
	}
	x, y := l.Origin()
	text.Draw(screen, l.Text, l.face, x, y, clr)
}
