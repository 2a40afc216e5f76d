package ui

import (
	"dot-smash/internal/app"
	"dot-smash/internal/assets"
	"dot-smash/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// RestartHint показывается на экране Game Over
const RestartHint = "Press R to play again"

// GameOverPanel рисует итог сессии.
type GameOverPanel struct {
	title   *Label
	average *Label
	hint    *Label
}

// NewGameOverPanel lays the panel out for a width x height screen.
func NewGameOverPanel(fonts *assets.FontSet, width, height int) *GameOverPanel {
	return &GameOverPanel{
		title:   NewCenteredLabel(width/2, height/3, "Game Over", fonts.GameOver, config.TextLightColor),
		average: NewCenteredLabel(width/2, config.AverageTextY, "", fonts.Average, config.TextLightColor),
		hint:    NewCenteredLabel(width/2, height-60, RestartHint, fonts.Response, config.HintColor),
	}
}

// SetSummary обновляет строку со средним временем.
func (p *GameOverPanel) SetSummary(s app.Summary) {
	p.average.Text = "Average Response Time: " + app.FormatAverage(s)
}

func (p *GameOverPanel) Draw(screen *ebiten.Image) {
	p.title.Draw(screen)
	p.average.Draw(screen)
	p.hint.Draw(screen)
}
