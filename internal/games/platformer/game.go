package platformer

import (
	"math/rand"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// customLevel replaces the embedded staircase map when set via CLI
var customLevel *level.Level

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevel sets the map used by the staircase world. Nil restores the
// embedded one.
func SetLevel(lvl *level.Level) {
	customLevel = lvl
}

// layoutFunc picks the platforms a world variant is built from.
type layoutFunc func(cfg config.PlatformerConfig) Layout

// Game wraps a world for the platform layer: input mapping, pause,
// restart and viewport tracking.
type Game struct {
	id      string
	title   string
	layout  layoutFunc
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	view    Viewport
	player  *Player
	frame   int
	paused  bool
	loaded  bool // cfg came from a successful load
}

// New creates the scrolling world: thousands of scattered platforms and
// the staircase.
func New() *Game {
	return &Game{
		id:     "scroller",
		title:  "Scroller",
		layout: ScrollerLayout,
	}
}

// NewStaircase creates a world holding only the platforms of a Tiled map.
func NewStaircase() *Game {
	return &Game{
		id:     "staircase",
		title:  "Staircase",
		layout: staircaseLayout,
	}
}

// staircaseLayout reads the map set via SetLevel or the embedded one. If
// neither loads, the configured staircase is used.
func staircaseLayout(cfg config.PlatformerConfig) Layout {
	layout := Layout{
		Fixed:  cfg.Staircase,
		SpawnX: cfg.Player.X,
		SpawnY: cfg.Player.Y,
	}

	lvl := customLevel
	if lvl == nil {
		var err error
		if lvl, err = level.Default(); err != nil {
			return layout
		}
	}

	layout.Fixed = lvl.Platforms
	if lvl.Spawn != nil {
		layout.SpawnX, layout.SpawnY = lvl.Spawn.X, lvl.Spawn.Y
	}
	return layout
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads config and rebuilds the world from the runtime seed. If the
// config no longer loads, the last good one is kept; before any load
// succeeds the defaults are used.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	switch cfg, err := config.LoadPlatformer(configPath); {
	case err == nil:
		g.cfg, g.loaded = cfg, true
	case !g.loaded:
		g.cfg = config.DefaultPlatformerConfig()
	}
	cfg := g.cfg

	if runtime.CellW <= 0 {
		runtime.CellW = cfg.Render.CellWidth
	}
	if runtime.CellH <= 0 {
		runtime.CellH = cfg.Render.CellHeight
	}
	g.runtime = runtime
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.player = BuildWorld(cfg, g.layout(cfg), rng)
	g.frame = 0
	g.paused = false
}

// Resize updates the viewport without touching the world.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	w, h := g.runtime.WorldSize()
	g.view = Viewport{Width: w, Height: h}
}

// Step clears the canvas, applies this frame's input and advances the world
// by one frame. While paused the world is redrawn but not simulated.
func (g *Game) Step(in core.InputFrame, dst core.Canvas) core.StepResult {
	if g.player == nil {
		g.Reset(g.runtime)
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	taps := g.applyInput(in)
	defer g.endTaps(taps)

	if dst != nil {
		dst.Clear()
	}

	if g.paused {
		g.player.DrawWorld(dst)
		return core.StepResult{State: g.State()}
	}

	g.player.Update(g.view, dst)
	g.frame++

	return core.StepResult{State: g.State()}
}

// directionSetter records a press or release of one direction.
type directionSetter struct {
	action core.Action
	set    func(p *Player, pressed bool)
}

var directions = []directionSetter{
	{core.ActionLeft, (*Player).SetLeft},
	{core.ActionRight, (*Player).SetRight},
}

// applyInput maps events onto the player. Direction releases apply while
// paused so keys never stick; jump and descend do not. A direction pressed
// and released in the same frame is a tap: it is held for this frame and
// returned so Step can release it afterwards.
func (g *Game) applyInput(in core.InputFrame) (taps []directionSetter) {
	p := g.player

	for _, d := range directions {
		pressed, released := in.Has(d.action), in.Released(d.action)
		switch {
		case pressed && released:
			d.set(p, true)
			taps = append(taps, d)
		case pressed:
			d.set(p, true)
		case released:
			d.set(p, false)
		}
	}

	if g.paused {
		return taps
	}
	if in.Has(core.ActionJump) {
		p.Jump()
	}
	if in.Has(core.ActionDescend) {
		p.Descend()
	}
	return taps
}

// endTaps releases directions that were only tapped this frame.
func (g *Game) endTaps(taps []directionSetter) {
	for _, d := range taps {
		d.set(g.player, false)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Frame:  g.frame,
		Paused: g.paused,
	}
	if g.player != nil {
		s.PlayerX, s.PlayerY = g.player.X, g.player.Y
		s.PlayerXV, s.PlayerYV = g.player.XV, g.player.YV
		s.Collided = g.player.Collided()
		s.Platforms = len(g.player.Platforms())
	}
	return s
}

// Register the worlds with the registry
func init() {
	registry.Register("scroller", func() registry.Game {
		return New()
	})
	registry.Register("staircase", func() registry.Game {
		return NewStaircase()
	})
}
