package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/registry"
)

// Options tunes a Model beyond the runtime config.
type Options struct {
	// InitialHold is how long a fresh press stays held before the first
	// key repeat must arrive.
	InitialHold time.Duration

	// Hold is how long a direction stays held between key repeats.
	Hold time.Duration

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone bool

	// ScreenshotDir overrides ~/.platformer/screenshots.
	ScreenshotDir string
}

// pausedBanner is drawn over the middle of a paused world.
const pausedBanner = " PAUSED "

// Model is the Bubble Tea model for running a world in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *core.ScaledCanvas
	config     core.RuntimeConfig
	width      int // Terminal size; the world gets what the footer leaves
	height     int
	inputFrame core.InputFrame
	hold       *HoldTracker
	keyMapper  *KeyMapper
	help       help.Model
	theme      Theme
	gameState  core.GameState
	logger     *log.Logger
	now        func() time.Time
	opts       Options
	tickGen    uint64 // Ticks from other chains are dropped
	status     string // Last screenshot result
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the terminal size.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldTracker(opts.InitialHold, opts.Hold),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		theme:      DefaultTheme(),
		logger:     logger.With("game", game.ID()),
		now:        time.Now,
		opts:       opts,
		tickGen:    nextTickGen(),
	}
	m.help.Width = cfg.ScreenW

	w, h := m.worldSize()
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen = core.NewScreen(w, h)
	m.canvas = core.NewScaledCanvas(m.screen, cfg.CellW, cfg.CellH)

	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("world reset", "seed", m.config.Seed, "cols", m.config.ScreenW, "rows", m.config.ScreenH)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.status = m.screenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeWorld()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "frame", m.gameState.Frame)
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.now(), &m.inputFrame)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world is kept; only the
// viewport follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.resizeWorld()

	return m, nil
}

// resizeWorld fits the screen and the game viewport to the space above the footer.
func (m *Model) resizeWorld() {
	w, h := m.worldSize()
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
}

// worldSize returns the cell area left for the world.
func (m *Model) worldSize() (w, h int) {
	return max(m.width, 1), max(m.height-m.footerHeight(), 1)
}

// footerHeight returns the rows taken by the HUD line and help.
func (m *Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keyMapper.Keys()))
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now, &m.inputFrame)

	if m.inputFrame.Has(core.ActionRestart) {
		m.hold.Reset()
		m.logger.Debug("world restarted", "frame", m.gameState.Frame)
	}

	// Run game simulation
	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame, m.canvas)
	m.gameState = result.State

	if m.gameState.Paused != wasPaused {
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused, "frame", m.gameState.Frame)
	}
	if m.gameState.Paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, pausedBanner)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// screenshot saves the current screen to a text file and returns a status line.
func (m *Model) screenshot() string {
	path, err := SaveScreenshot(m.screen, m.opts.ScreenshotDir, m.game.ID(), m.now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// SaveScreenshot writes the screen's plain text to dir, defaulting to
// ~/.platformer/screenshots. Returns the written path.
func SaveScreenshot(s *core.Screen, dir, id string, at time.Time) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".platformer", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	filename := fmt.Sprintf("%s_%s.txt", id, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.hudLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))
	return b.String()
}

// hudLine renders the player position and world status.
func (m Model) hudLine() string {
	t := m.theme
	s := m.gameState
	sep := t.HUDSeparator.Render(" │ ")

	field := func(label, value string) string {
		return t.HUDLabel.Render(label+" ") + t.HUDValue.Render(value)
	}

	parts := []string{
		field("pos", fmt.Sprintf("%.0f,%.0f", s.PlayerX, s.PlayerY)),
		field("vel", fmt.Sprintf("%.1f,%.1f", s.PlayerXV, s.PlayerYV)),
		field("held", m.heldArrows()),
		field("frame", fmt.Sprintf("%d", s.Frame)),
		field("platforms", fmt.Sprintf("%d", s.Platforms)),
	}
	if s.Paused {
		parts = append(parts, t.HUDPaused.Render("PAUSED"))
	}
	if m.status != "" {
		parts = append(parts, t.HUDLabel.Render(m.status))
	}

	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(strings.Join(parts, sep))
}

// heldArrows shows which directions the terminal is treating as held.
func (m Model) heldArrows() string {
	arrows := ""
	if m.hold.Held(core.ActionLeft) {
		arrows += "←"
	}
	if m.hold.Held(core.ActionRight) {
		arrows += "→"
	}
	if arrows == "" {
		return "-"
	}
	return arrows
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
