package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// LogPrefix — префикс всех строк лога
const LogPrefix = "dotsmash"

// NewLogger builds the game logger writing to w. An empty level means info.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          LogPrefix,
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return logger, fmt.Errorf("log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// LogFatal пишет ошибку старта на уровне error; выход с кодом 1 делает вызывающий.
func LogFatal(logger *log.Logger, err error) {
	logger.Error("fatal", "err", err)
}
