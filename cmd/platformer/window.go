package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:   "window [world]",
	Short: "Play in a desktop window",
	Long: `Open a world in a desktop window. One window pixel is one world unit,
and the viewport follows the window size.

Controls:
  Left/A, Right/D   - Move; scroll the world at the edges
  Up/W/Space        - Jump
  Down/S            - Descend
  P                 - Pause
  R                 - Restart
  Esc/Q             - Quit

Examples:
  platformer window
  platformer window staircase
  platformer window scroller --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadSettings(logger)
	if err != nil {
		fail("%v", err)
	}

	id := "scroller"
	if len(args) == 1 {
		id = args[0]
	}
	game, err := createWorld(id)
	if err != nil {
		fail("%v", err)
	}

	runtime := runtimeConfig(cfg, cfg.Window.Width, cfg.Window.Height)
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	if err := gfx.Run(game, runtime, cfg.Window, logger); err != nil {
		fail("%v", err)
	}
}
