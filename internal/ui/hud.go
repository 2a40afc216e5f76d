package ui

import (
	"dot-smash/internal/app"
	"dot-smash/internal/assets"
	"dot-smash/internal/config"
	"dot-smash/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

// StartHint показывается до первого попадания
const StartHint = "Click the dot to start."

// HUD shows the last response time and the remaining dot count while playing.
type HUD struct {
	response  *Label
	remaining *RemainingIndicator
}

func NewHUD(fonts *assets.FontSet, totalRounds int) *HUD {
	h := &HUD{
		response: NewLabel(config.ResponseTextX, config.ResponseTextY, StartHint, fonts.Response, config.TextLightColor),
		remaining: NewRemainingIndicator(config.RemainingTextX, config.RemainingTextY, fonts.Remaining,
			config.TextLightColor, config.DotColor),
	}
	h.remaining.Set(totalRounds)
	return h
}

// Subscribe подписывает HUD на события сессии.
func (h *HUD) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.SessionStarted, h)
	d.Subscribe(event.DotHit, h)
}

// OnEvent реализует интерфейс event.Listener.
func (h *HUD) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.SessionData:
		h.response.Text = StartHint
		h.remaining.Set(data.TotalRounds)
	case event.HitData:
		h.response.Text = "Response Time: " + app.FormatResponseTime(data.Elapsed)
		h.remaining.Set(data.Remaining)
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.response.Draw(screen)
	h.remaining.Draw(screen)
}
