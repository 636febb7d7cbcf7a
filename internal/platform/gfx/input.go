package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/platformer/internal/core"
)

// Bindings maps actions to keyboard keys.
type Bindings map[core.Action][]ebiten.Key

// DefaultBindings returns the default window key bindings.
func DefaultBindings() Bindings {
	return Bindings{
		core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
		core.ActionJump:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
		core.ActionDescend: {ebiten.KeyArrowDown, ebiten.KeyS},
		core.ActionPause:   {ebiten.KeyP},
		core.ActionRestart: {ebiten.KeyR},
		core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
	}
}

// KeyEdges reports per-key press and release edges for one tick, and
// which keys are currently down.
type KeyEdges interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	Down(k ebiten.Key) bool
}

// ebitenEdges reads edges from inpututil.
type ebitenEdges struct{}

func (ebitenEdges) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenEdges) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenEdges) Down(k ebiten.Key) bool         { return ebiten.IsKeyPressed(k) }

// Frame builds this tick's input. Windows report real key releases, so
// directions are released exactly when their last bound key goes up.
func (b Bindings) Frame(edges KeyEdges) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range b {
		released, down := false, false
		for _, k := range keys {
			if edges.JustPressed(k) {
				frame.Set(action)
			}
			released = released || edges.JustReleased(k)
			down = down || edges.Down(k)
		}
		// Another key bound to the action keeps it held
		if released && !down {
			frame.Release(action)
		}
	}
	return frame
}
