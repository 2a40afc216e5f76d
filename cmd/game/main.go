// dotsmash is a reflex test: click the dot, it jumps elsewhere; after the last
// hit the game shows the average time between hits.
//
// Usage:
//
//	dotsmash [flags]
//
// Flags override the config file, the config file overrides built-in defaults.
package main

import (
	"fmt"
	"os"
	"time"

	"dot-smash/internal/app"
	"dot-smash/internal/assets"
	"dot-smash/internal/config"
	"dot-smash/internal/event"
	"dot-smash/internal/state"
	"dot-smash/internal/system"
	"dot-smash/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagRounds   int
	flagRadius   int
	flagSeed     int64
	flagFont     string
	flagLogLevel string
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// logger создаётся до разбора флагов, чтобы ошибки старта тоже попадали в лог.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          app.LogPrefix,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		app.LogFatal(logger, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dotsmash",
	Short:         "Dot Smash - click the dot as fast as you can",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML settings file")
	rootCmd.Flags().IntVar(&flagRounds, "rounds", config.TotalRounds, "Number of dots to hit")
	rootCmd.Flags().IntVar(&flagRadius, "radius", config.DotRadius, "Dot radius in pixels")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagFont, "font", "", "Path to a TTF/OTF font (empty = bundled font)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// applyFlags переносит в настройки только явно заданные флаги.
func applyFlags(cmd *cobra.Command, cfg *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("rounds") {
		cfg.Rounds = flagRounds
	}
	if flags.Changed("radius") {
		cfg.Dot.Radius = flagRadius
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("font") {
		cfg.FontPath = flagFont
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	configured, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = configured

	if err := cfg.Validate(); err != nil {
		return err
	}

	fonts, err := assets.LoadFonts(cfg.FontPath)
	if err != nil {
		return fmt.Errorf("failed to fetch the font file: %w", err)
	}
	defer fonts.Close()
	logger.Debug("fonts loaded", "source", fonts.Source)

	rng := utils.NewPRNGService(cfg.Seed)
	logger.Debug("rng seeded", "seed", rng.Seed())

	dispatcher := event.NewDispatcher()
	listener := app.NewGameEventListener(dispatcher, logger)
	defer listener.Close()

	game, err := app.NewGame(app.Options{
		Bounds:      cfg.Bounds(),
		Radius:      cfg.Dot.Radius,
		TotalRounds: cfg.Rounds,
		Rng:         rng,
		Clock:       system.SystemClock{},
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewPlayState(sm, game, fonts, cfg.Rounds))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
	}
	if err := ebiten.RunGame(appGame); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("window closed")
	return nil
}
