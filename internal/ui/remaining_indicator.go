package ui

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"dot-smash/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// RemainingIndicator показывает сколько точек осталось и вспыхивает при изменении.
type RemainingIndicator struct {
	label       *Label
	FlashColor  color.RGBA
	BaseColor   color.RGBA
	LastChanged time.Time
}

// NewRemainingIndicator создает индикатор оставшихся точек.
func NewRemainingIndicator(x, y int, face font.Face, base, flash color.RGBA) *RemainingIndicator {
	return &RemainingIndicator{
		label:      NewLabel(x, y, "", face, base),
		FlashColor: flash,
		BaseColor:  base,
	}
}

// Set обновляет число; вспышка только если значение изменилось.
func (i *RemainingIndicator) Set(remaining int) {
	s := strconv.Itoa(remaining)
	if s == i.label.Text {
		return
	}
	if i.label.Text != "" {
		i.LastChanged = time.Now()
	}
	i.label.Text = s
}

func (i *RemainingIndicator) Text() string { return i.label.Text }

// Draw отрисовывает индикатор
func (i *RemainingIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastChanged).Seconds()
	flash := float32(math.Exp(-elapsed * 8))
	i.label.DrawColor(screen, render.BlendColor(i.BaseColor, i.FlashColor, flash))
}
