package system

import (
	"errors"
	"testing"
	"time"

	"dot-smash/internal/component"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTracker(t *testing.T, rounds int, clock Clock) *ScoreTracker {
	t.Helper()
	s, err := NewScoreTracker(rounds, clock)
	if err != nil {
		t.Fatalf("NewScoreTracker(%d) error = %v", rounds, err)
	}
	return s
}

func equalDurations(a, b []time.Duration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScoreTracker_ThreeRounds(t *testing.T) {
	clock := newFakeClock()
	s := newTracker(t, 3, clock)

	if s.Phase() != component.Idle {
		t.Errorf("initial phase = %v, want idle", s.Phase())
	}

	if got := s.RecordHit(); got != 0 {
		t.Errorf("first hit elapsed = %v, want 0", got)
	}
	if s.Remaining() != 2 {
		t.Errorf("remaining = %d, want 2", s.Remaining())
	}
	if len(s.ResponseTimes()) != 0 {
		t.Errorf("history after first hit = %v, want empty", s.ResponseTimes())
	}
	if s.Phase() != component.InProgress {
		t.Errorf("phase after first hit = %v, want in-progress", s.Phase())
	}

	dt1 := 420 * time.Millisecond
	clock.Advance(dt1)
	if got := s.RecordHit(); got != dt1 {
		t.Errorf("second hit elapsed = %v, want %v", got, dt1)
	}
	if s.Remaining() != 1 {
		t.Errorf("remaining = %d, want 1", s.Remaining())
	}
	if !equalDurations(s.ResponseTimes(), []time.Duration{dt1}) {
		t.Errorf("history = %v, want [%v]", s.ResponseTimes(), dt1)
	}
	if s.IsGameOver() {
		t.Error("game should not be over with one round left")
	}

	dt2 := 610 * time.Millisecond
	clock.Advance(dt2)
	if got := s.RecordHit(); got != dt2 {
		t.Errorf("third hit elapsed = %v, want %v", got, dt2)
	}
	if s.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", s.Remaining())
	}
	if !equalDurations(s.ResponseTimes(), []time.Duration{dt1, dt2}) {
		t.Errorf("history = %v, want [%v %v]", s.ResponseTimes(), dt1, dt2)
	}
	if !s.IsGameOver() {
		t.Error("game should be over")
	}
	if s.Phase() != component.GameOver {
		t.Errorf("phase = %v, want game-over", s.Phase())
	}

	avg, err := s.AverageResponseTime()
	if err != nil {
		t.Fatalf("AverageResponseTime() error = %v", err)
	}
	if want := (dt1 + dt2) / 2; avg != want {
		t.Errorf("average = %v, want %v", avg, want)
	}
}

func TestScoreTracker_AverageIncludesFirstRecorded(t *testing.T) {
	clock := newFakeClock()
	s := newTracker(t, 4, clock)

	s.RecordHit()
	for _, d := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 600 * time.Millisecond} {
		clock.Advance(d)
		s.RecordHit()
	}

	avg, err := s.AverageResponseTime()
	if err != nil {
		t.Fatalf("AverageResponseTime() error = %v", err)
	}
	if avg != 300*time.Millisecond {
		t.Errorf("average = %v, want 300ms", avg)
	}
}

func TestScoreTracker_EmptyHistory(t *testing.T) {
	s := newTracker(t, 10, newFakeClock())

	_, err := s.AverageResponseTime()
	if !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("AverageResponseTime() error = %v, want ErrEmptyHistory", err)
	}
}

func TestScoreTracker_SingleRound(t *testing.T) {
	s := newTracker(t, 1, newFakeClock())

	if got := s.RecordHit(); got != 0 {
		t.Errorf("elapsed = %v, want 0", got)
	}
	if !s.IsGameOver() {
		t.Error("single round game should be over after one hit")
	}
	if len(s.ResponseTimes()) != 0 {
		t.Errorf("history = %v, want empty", s.ResponseTimes())
	}
	if _, err := s.AverageResponseTime(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("AverageResponseTime() error = %v, want ErrEmptyHistory", err)
	}
}

func TestScoreTracker_HitsAfterGameOver(t *testing.T) {
	clock := newFakeClock()
	s := newTracker(t, 2, clock)

	s.RecordHit()
	clock.Advance(time.Second)
	s.RecordHit()
	before := s.ResponseTimes()

	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		if got := s.RecordHit(); got != 0 {
			t.Errorf("hit after game over returned %v, want 0", got)
		}
	}

	if s.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", s.Remaining())
	}
	if !equalDurations(s.ResponseTimes(), before) {
		t.Errorf("history changed after game over: %v, want %v", s.ResponseTimes(), before)
	}
	if !s.IsGameOver() {
		t.Error("game over should stick")
	}
}

func TestScoreTracker_HistoryLengthInvariant(t *testing.T) {
	clock := newFakeClock()
	s := newTracker(t, 10, clock)

	for i := 0; i < 10; i++ {
		clock.Advance(50 * time.Millisecond)
		s.RecordHit()
		if want := s.TotalRounds() - s.Remaining() - 1; len(s.ResponseTimes()) != want {
			t.Fatalf("after hit %d: len(history) = %d, want %d", i+1, len(s.ResponseTimes()), want)
		}
	}
	if s.Hits() != 10 {
		t.Errorf("Hits() = %d, want 10", s.Hits())
	}
}

func TestScoreTracker_ResponseTimesIsCopy(t *testing.T) {
	clock := newFakeClock()
	s := newTracker(t, 3, clock)
	s.RecordHit()
	clock.Advance(time.Second)
	s.RecordHit()

	rt := s.ResponseTimes()
	rt[0] = 0
	if s.ResponseTimes()[0] != time.Second {
		t.Error("mutating the returned slice changed the tracker history")
	}
}

func TestNewScoreTracker_InvalidRounds(t *testing.T) {
	for _, rounds := range []int{0, -1} {
		if _, err := NewScoreTracker(rounds, nil); !errors.Is(err, ErrInvalidRounds) {
			t.Errorf("NewScoreTracker(%d) error = %v, want ErrInvalidRounds", rounds, err)
		}
	}
}
