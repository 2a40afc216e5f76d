// internal/state/play_state.go
package state

import (
	"dot-smash/internal/app"
	"dot-smash/internal/assets"
	"dot-smash/internal/component"
	"dot-smash/internal/config"
	"dot-smash/internal/event"
	"dot-smash/internal/ui"
	"dot-smash/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayState)(nil)

// PlayState draws the dot and the HUD and forwards clicks.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	hud      *ui.HUD
	dot      *render.DotRenderer
	gameOver *GameOverState
	finished bool // выставляется обработчиком события GameOver
}

// NewPlayState wires the HUD and the game-over screen to the game's dispatcher.
func NewPlayState(sm *StateMachine, g *app.Game, fonts *assets.FontSet, totalRounds int) *PlayState {
	s := &PlayState{
		sm:   sm,
		game: g,
		hud:  ui.NewHUD(fonts, totalRounds),
		dot:  render.NewDotRenderer(),
	}
	b := g.Bounds()
	s.gameOver = NewGameOverState(sm, s, ui.NewGameOverPanel(fonts, b.Width, b.Height))

	d := g.Dispatcher()
	s.hud.Subscribe(d)
	d.Subscribe(event.GameOver, s)
	return s
}

// OnEvent реализует интерфейс event.Listener: конец сессии.
func (s *PlayState) OnEvent(e event.Event) {
	if e.Type == event.GameOver {
		s.finished = true
	}
}

func (s *PlayState) Enter() {
	s.finished = false
}

func (s *PlayState) Update(deltaTime float64) {
	s.game.Update(deltaTime)

	// Любая кнопка мыши считается кликом
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if !inpututil.IsMouseButtonJustPressed(b) {
			continue
		}
		x, y := ebiten.CursorPosition()
		s.game.Press(component.Point{X: x, Y: y})
		if s.finished {
			break
		}
	}

	if s.finished {
		s.gameOver.panel.SetSummary(s.game.Summary())
		s.sm.SetState(s.gameOver)
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.dot.Draw(screen, s.game.Target(), s.game.Renderable(), s.game.GameTime())
	s.hud.Draw(screen)
}

func (s *PlayState) Exit() {}
