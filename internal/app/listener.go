package app

import (
	"dot-smash/internal/event"

	"github.com/charmbracelet/log"
)

// GameEventListener пишет игровые события в лог.
type GameEventListener struct {
	logger     *log.Logger
	dispatcher *event.Dispatcher
}

var listenedEvents = []event.EventType{event.SessionStarted, event.DotHit, event.GameOver}

// NewGameEventListener subscribes a logging listener to every game event.
func NewGameEventListener(d *event.Dispatcher, logger *log.Logger) *GameEventListener {
	l := &GameEventListener{logger: logger, dispatcher: d}
	for _, t := range listenedEvents {
		d.Subscribe(t, l)
	}
	return l
}

// Close отписывает логгер от всех событий.
func (l *GameEventListener) Close() {
	for _, t := range listenedEvents {
		l.dispatcher.Unsubscribe(t, l)
	}
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.SessionData:
		l.logger.Info("session started", "session", data.SessionID, "rounds", data.TotalRounds)
	case event.HitData:
		if data.First {
			l.logger.Debug("timer started", "session", data.SessionID, "remaining", data.Remaining)
			return
		}
		l.logger.Debug("dot hit", "session", data.SessionID, "elapsed", data.Elapsed, "remaining", data.Remaining)
	case event.GameOverData:
		if !data.HasAverage {
			l.logger.Info("game over", "session", data.SessionID, "hits", data.Hits, "average", NotAvailable)
			return
		}
		l.logger.Info("game over", "session", data.SessionID, "hits", data.Hits, "average", data.Average)
	}
}
