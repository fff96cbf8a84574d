package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

const defaultConfigPath = "config.yml"

// main loads the game config and replays the configured moves through the engine.
func main() {
	conf, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(conf.LogLevel)

	if err = app.RunApp(logger, conf); err != nil {
		logger.Error("tictactoe replay failed", "error", err)
		os.Exit(1)
	}
}

// configPath honours TICTACTOE_CONFIG so a replay can run outside the repo root.
func configPath() string {
	if path := os.Getenv("TICTACTOE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// newLogger accepts any slog level name; unknown names fall back to info.
func newLogger(levelName string) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With("service", "tictactoe")
}
