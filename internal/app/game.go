package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"dot-smash/internal/component"
	"dot-smash/internal/config"
	"dot-smash/internal/event"
	"dot-smash/internal/system"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options holds everything a session needs from the outside world.
type Options struct {
	Bounds      component.Bounds
	Radius      int
	TotalRounds int
	Rng         system.RandomSource
	Clock       system.Clock
	Dispatcher  *event.Dispatcher
	Logger      *log.Logger
	NewID       func() string // по умолчанию uuid.NewString
}

// HitResult describes one accepted press.
type HitResult struct {
	Elapsed   time.Duration
	Remaining int
	First     bool
	GameOver  bool
}

// Summary is the session result shown on the game-over screen.
type Summary struct {
	Hits       int
	Remaining  int
	Average    time.Duration
	HasAverage bool
}

// Game holds one play session: the dot, its placer and the score.
type Game struct {
	opts       Options
	placer     *system.RandomPlacer
	target     *component.Target
	score      *system.ScoreTracker
	renderable component.Renderable
	sessionID  string
	logger     *log.Logger
	gameTime   float64
}

// NewGame validates the options and starts the first session.
func NewGame(opts Options) (*Game, error) {
	if opts.Rng == nil {
		return nil, errors.New("app: random source is required")
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = system.SystemClock{}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if err := opts.Bounds.Fits(opts.Radius); err != nil {
		return nil, err
	}

	g := &Game{
		opts:   opts,
		placer: system.NewRandomPlacer(opts.Rng),
		renderable: component.Renderable{
			Color: config.DotColor,
		},
	}
	if err := g.startSession(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) startSession() error {
	score, err := system.NewScoreTracker(g.opts.TotalRounds, g.opts.Clock)
	if err != nil {
		return err
	}
	target, err := component.NewTarget(g.placer, g.opts.Bounds, g.opts.Radius)
	if err != nil {
		return fmt.Errorf("place first target: %w", err)
	}

	g.score = score
	g.target = target
	g.renderable.SpawnTime = g.gameTime
	g.sessionID = g.opts.NewID()
	g.logger = g.opts.Logger.With("session", g.sessionID)

	g.opts.Dispatcher.Dispatch(event.Event{
		Type: event.SessionStarted,
		Data: event.SessionData{SessionID: g.sessionID, TotalRounds: score.TotalRounds()},
	})
	return nil
}

// Update progresses the animation clock by one frame.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
}

// Press handles a pointer press at p. It returns false when the press is
// ignored: a miss, or any press after the game is over.
func (g *Game) Press(p component.Point) (HitResult, bool) {
	if g.score.IsGameOver() || !g.target.HitTest(p) {
		return HitResult{}, false
	}

	if err := g.target.Relocate(g.placer, g.opts.Bounds, g.opts.Radius); err != nil {
		// Границы проверены в NewGame, сюда попасть нельзя
		g.logger.Error("relocate target", "err", err)
		return HitResult{}, false
	}
	g.renderable.SpawnTime = g.gameTime

	first := g.score.Phase() == component.Idle
	elapsed := g.score.RecordHit()
	res := HitResult{
		Elapsed:   elapsed,
		Remaining: g.score.Remaining(),
		First:     first,
		GameOver:  g.score.IsGameOver(),
	}

	g.opts.Dispatcher.Dispatch(event.Event{
		Type: event.DotHit,
		Data: event.HitData{
			SessionID: g.sessionID,
			Elapsed:   res.Elapsed,
			Remaining: res.Remaining,
			First:     res.First,
		},
	})

	if res.GameOver {
		s := g.Summary()
		g.opts.Dispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.GameOverData{
				SessionID:  g.sessionID,
				Hits:       s.Hits,
				Average:    s.Average,
				HasAverage: s.HasAverage,
			},
		})
	}
	return res, true
}

// Restart begins a new session with a fresh score and target.
func (g *Game) Restart() error {
	return g.startSession()
}

func (g *Game) Summary() Summary {
	s := Summary{
		Hits:      g.score.Hits(),
		Remaining: g.score.Remaining(),
	}
	avg, err := g.score.AverageResponseTime()
	if err == nil {
		s.Average = avg
		s.HasAverage = true
	}
	return s
}

func (g *Game) Target() component.Target         { return *g.target }
func (g *Game) Renderable() component.Renderable { return g.renderable }
func (g *Game) Phase() component.Phase           { return g.score.Phase() }
func (g *Game) Remaining() int                   { return g.score.Remaining() }
func (g *Game) IsGameOver() bool                 { return g.score.IsGameOver() }
func (g *Game) SessionID() string                { return g.sessionID }
func (g *Game) GameTime() float64                { return g.gameTime }
func (g *Game) Dispatcher() *event.Dispatcher    { return g.opts.Dispatcher }
func (g *Game) Bounds() component.Bounds         { return g.opts.Bounds }
