package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/platformer/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [world]",
	Short: "Play in the terminal",
	Long: `Start a world in the terminal. Without a world, a picker menu is shown
and you return to it with Esc.

Terminals do not report key releases, so a direction counts as held while
your keyboard repeats it. A fresh press waits input.initial_hold_ms for the
first repeat; after that it is released once input.hold_ms passes without
one.

Controls:
  Left/A, Right/D   - Move; scroll the world at the edges
  Up/W/Space        - Jump
  Down/S            - Descend
  P                 - Pause
  R                 - Restart
  Ctrl+S            - Screenshot
  ?                 - Help
  Esc               - Back
  Q/Ctrl+C          - Quit

Examples:
  platformer play
  platformer play scroller --seed 42
  platformer play staircase --level ./my-level.tmx
  platformer play scroller --log-file ./platformer.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy with the game)")
}

func runPlay(_ *cobra.Command, args []string) {
	// The alt screen owns stderr, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		defer f.Close()
		out = f
	}

	logger, err := newLogger(out)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadSettings(logger)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := runtimeConfig(cfg, width, height)
	opts := tui.Options{Logger: logger}
	opts.InitialHold, opts.Hold = holdDurations(cfg)

	if len(args) == 0 {
		if err := tui.RunSession(runtime, opts); err != nil {
			fail("running menu: %v", err)
		}
		return
	}

	game, err := createWorld(args[0])
	if err != nil {
		fail("%v", err)
	}

	if err := tui.Run(game, runtime, opts); err != nil {
		fail("running world: %v", err)
	}
}
