package state

import (
	"fmt"

	"dot-smash/internal/config"
	"dot-smash/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог; R начинает новую сессию.
type GameOverState struct {
	sm    *StateMachine
	play  *PlayState
	panel *ui.GameOverPanel
}

func NewGameOverState(sm *StateMachine, play *PlayState, panel *ui.GameOverPanel) *GameOverState {
	return &GameOverState{sm: sm, play: play, panel: panel}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.play.game.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.play.game.Restart(); err != nil {
			s.sm.Fail(fmt.Errorf("restart session: %w", err))
			return
		}
		s.sm.SetState(s.play)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.panel.Draw(screen)
}

func (s *GameOverState) Exit() {}
