package config

import (
	"fmt"

	"dot-smash/internal/component"
	"dot-smash/internal/system"
)

// WindowSettings хранит размеры и заголовок окна
type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DotSettings хранит параметры цели
type DotSettings struct {
	Radius int `yaml:"radius"`
}

// Settings is the user-tunable part of the configuration.
type Settings struct {
	Window   WindowSettings `yaml:"window"`
	Dot      DotSettings    `yaml:"dot"`
	Rounds   int            `yaml:"rounds"`
	Seed     int64          `yaml:"seed"`
	FontPath string         `yaml:"font"`
	LogLevel string         `yaml:"log_level"`
}

// DefaultSettings returns the hardcoded defaults, used when the embedded YAML is unusable.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		Dot:      DotSettings{Radius: DotRadius},
		Rounds:   TotalRounds,
		LogLevel: "info",
	}
}

// Bounds returns the play area.
func (s Settings) Bounds() component.Bounds {
	return component.Bounds{Width: s.Window.Width, Height: s.Window.Height}
}

// Validate проверяет настройки один раз при старте.
func (s Settings) Validate() error {
	if s.Rounds < 1 {
		return fmt.Errorf("config: rounds %d: %w", s.Rounds, system.ErrInvalidRounds)
	}
	if err := s.Bounds().Fits(s.Dot.Radius); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
