package render

import (
	"dot-smash/internal/component"
	"dot-smash/internal/config"
	"dot-smash/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DotRenderer рисует цель с обводкой и анимацией появления.
type DotRenderer struct{}

func NewDotRenderer() *DotRenderer {
	return &DotRenderer{}
}

// Draw renders t. The radius grows in after every relocation; hit testing
// always uses the full radius.
func (r *DotRenderer) Draw(screen *ebiten.Image, t component.Target, rd component.Renderable, gameTime float64) {
	progress := (gameTime - rd.SpawnTime) / config.SpawnAnimDuration
	scale := float32(utils.EaseOutCubic(progress))
	radius := float32(t.Radius) * scale
	if radius <= 0 {
		return
	}

	c := t.Center()
	cx, cy := float32(c.X), float32(c.Y)
	vector.DrawFilledCircle(screen, cx, cy, radius, DarkenColor(rd.Color), true)
	if inner := radius - config.DotStrokeWidth; inner > 0 {
		vector.DrawFilledCircle(screen, cx, cy, inner, rd.Color, true)
	}
}
