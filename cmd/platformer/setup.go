package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/games/platformer"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/registry"
)

// newLogger builds the CLI logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	}), nil
}

// loadSettings reads the config and the optional level, and hands both to
// the worlds before any of them is created.
func loadSettings(logger *log.Logger) (config.PlatformerConfig, error) {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return cfg, err
	}
	platformer.SetConfigPath(flagConfig)

	if flagLevel != "" {
		lvl, err := level.LoadFile(flagLevel)
		if err != nil {
			return cfg, err
		}
		platformer.SetLevel(lvl)
		logger.Info("level loaded", "path", flagLevel, "platforms", len(lvl.Platforms))
	}

	return cfg, nil
}

// runtimeConfig builds the runtime config for a screen of the given size.
func runtimeConfig(cfg config.PlatformerConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		CellW:    cfg.Render.CellWidth,
		CellH:    cfg.Render.CellHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// createWorld looks up a world by ID.
func createWorld(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown world %q, run 'platformer list' to see available worlds", id)
	}
	return registry.Create(id)
}

// holdDurations converts the configured held-key windows.
func holdDurations(cfg config.PlatformerConfig) (initial, hold time.Duration) {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return ms(cfg.Input.InitialHoldMS), ms(cfg.Input.HoldMS)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
