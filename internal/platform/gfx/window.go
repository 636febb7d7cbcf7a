package gfx

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a different face type
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/registry"
)

// Window adapts a registry.Game to ebiten.Game. One window pixel is one
// world unit.
type Window struct {
	game     registry.Game
	runtime  core.RuntimeConfig
	list     *core.DrawList
	bindings Bindings
	edges    KeyEdges
	face     font.Face
	logger   *log.Logger
	state    core.GameState
}

// NewWindow creates a window sized from wc. A nil logger discards events.
func NewWindow(game registry.Game, cfg core.RuntimeConfig, wc config.WindowConfig, logger *log.Logger) (*Window, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	face, err := hudFace()
	if err != nil {
		return nil, err
	}

	cfg.ScreenW, cfg.ScreenH = wc.Width, wc.Height
	cfg.CellW, cfg.CellH = 1, 1

	return &Window{
		game:     game,
		runtime:  cfg,
		list:     core.NewDrawList(float64(wc.Width), float64(wc.Height)),
		bindings: DefaultBindings(),
		edges:    ebitenEdges{},
		face:     face,
		logger:   logger.With("game", game.ID()),
	}, nil
}

// Reset builds the world for the current window size.
func (w *Window) Reset() {
	w.game.Reset(w.runtime)
	w.state = w.game.State()
	w.logger.Debug("world reset", "seed", w.runtime.Seed, "width", w.runtime.ScreenW, "height", w.runtime.ScreenH)
}

// Update advances the world one tick and records its draw commands.
func (w *Window) Update() error {
	in := w.bindings.Frame(w.edges)
	if in.Has(core.ActionQuit) {
		w.logger.Info("quit", "frame", w.state.Frame)
		return ebiten.Termination
	}

	wasPaused := w.state.Paused
	w.state = w.game.Step(in, w.list).State
	if w.state.Paused != wasPaused {
		w.logger.Debug("pause toggled", "paused", w.state.Paused, "frame", w.state.Frame)
	}
	return nil
}

// Draw replays the recorded frame and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(Background)

	for _, cmd := range w.list.Commands() {
		vector.FillRect(screen,
			float32(cmd.X), float32(cmd.Y),
			float32(cmd.W), float32(cmd.H),
			RGBA(cmd.Color), false)
	}

	text.Draw(screen, hudText(w.state), w.face, 10, 20, RGBA(core.ColorGray))
}

// Layout follows the outer window so the viewport grows with it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (w *Window) resize(width, height int) {
	if width == w.runtime.ScreenW && height == w.runtime.ScreenH {
		return
	}
	w.runtime.ScreenW, w.runtime.ScreenH = width, height
	w.list.SetBounds(float64(width), float64(height))
	w.game.Resize(width, height)
	w.logger.Debug("window resized", "width", width, "height", height)
}

// hudText formats the status line.
func hudText(s core.GameState) string {
	line := fmt.Sprintf("pos %.0f,%.0f   vel %.1f,%.1f   frame %d   platforms %d",
		s.PlayerX, s.PlayerY, s.PlayerXV, s.PlayerYV, s.Frame, s.Platforms)
	if s.Paused {
		line += "   PAUSED"
	}
	return line
}

// Run opens a window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, wc config.WindowConfig, logger *log.Logger) error {
	w, err := NewWindow(game, cfg, wc, logger)
	if err != nil {
		return err
	}
	w.Reset()

	ebiten.SetWindowSize(wc.Width, wc.Height)
	ebiten.SetWindowTitle(wc.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
