// internal/event/types.go
package event

import "time"

const (
	SessionStarted EventType = "SessionStarted" // Новая сессия, точка уже на поле
	DotHit         EventType = "DotHit"         // Засчитано попадание
	GameOver       EventType = "GameOver"       // Попадания закончились
)

// HitData is the payload of DotHit.
type HitData struct {
	SessionID string
	Elapsed   time.Duration
	Remaining int
	First     bool // первое попадание только запускает таймер
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	SessionID  string
	Hits       int
	Average    time.Duration
	HasAverage bool
}

// SessionData is the payload of SessionStarted.
type SessionData struct {
	SessionID   string
	TotalRounds int
}
