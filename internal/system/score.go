// internal/system/score.go
package system

import (
	"errors"
	"fmt"
	"time"

	"dot-smash/internal/component"
)

var (
	// нет ни одного измеренного времени реакции
	ErrEmptyHistory = errors.New("no response times recorded")
	// количество раундов должно быть не меньше одного
	ErrInvalidRounds = errors.New("total rounds must be at least 1")
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock использует time.Now, показания включают монотонные часы.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ScoreTracker считает оставшиеся попадания и время между ними.
// Первое попадание только запускает таймер и в историю не попадает.
type ScoreTracker struct {
	clock         Clock
	totalRounds   int
	remaining     int
	responseTimes []time.Duration
	lastHit       time.Time
}

func NewScoreTracker(totalRounds int, clock Clock) (*ScoreTracker, error) {
	if totalRounds < 1 {
		return nil, fmt.Errorf("rounds %d: %w", totalRounds, ErrInvalidRounds)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &ScoreTracker{
		clock:       clock,
		totalRounds: totalRounds,
		remaining:   totalRounds,
	}, nil
}

// RecordHit registers one valid hit and returns the time since the previous one.
// After the game is over it does nothing and returns 0.
func (s *ScoreTracker) RecordHit() time.Duration {
	if s.remaining == 0 {
		return 0
	}

	now := s.clock.Now()
	var elapsed time.Duration
	if s.remaining == s.totalRounds {
		s.lastHit = now
	} else {
		elapsed = now.Sub(s.lastHit)
		if elapsed < 0 {
			elapsed = 0
		}
		s.responseTimes = append(s.responseTimes, elapsed)
		s.lastHit = now
	}
	s.remaining--
	return elapsed
}

func (s *ScoreTracker) IsGameOver() bool {
	return s.remaining == 0
}

// AverageResponseTime is the mean of every recorded response time.
func (s *ScoreTracker) AverageResponseTime() (time.Duration, error) {
	if len(s.responseTimes) == 0 {
		return 0, ErrEmptyHistory
	}
	var sum time.Duration
	for _, rt := range s.responseTimes {
		sum += rt
	}
	return sum / time.Duration(len(s.responseTimes)), nil
}

func (s *ScoreTracker) Phase() component.Phase {
	switch {
	case s.remaining == 0:
		return component.GameOver
	case s.remaining == s.totalRounds:
		return component.Idle
	default:
		return component.InProgress
	}
}

func (s *ScoreTracker) Remaining() int   { return s.remaining }
func (s *ScoreTracker) TotalRounds() int { return s.totalRounds }

// Hits returns how many hits the session has counted.
func (s *ScoreTracker) Hits() int { return s.totalRounds - s.remaining }

// ResponseTimes returns a copy of the recorded history in hit order.
func (s *ScoreTracker) ResponseTimes() []time.Duration {
	out := make([]time.Duration, len(s.responseTimes))
	copy(out, s.responseTimes)
	return out
}
