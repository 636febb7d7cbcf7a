// Package platformer implements a side-scrolling platformer.
// A player rectangle falls under gravity, lands on platform tops, and pushes
// the world sideways once it reaches a border band near either viewport edge.
package platformer

import (
	"math"

	"github.com/vovakirdan/platformer/internal/core"
)

// Entity is the shape, position and velocity shared by the player and
// platforms. Size is fixed at construction.
type Entity struct {
	X, Y   float64 // Top-left corner, y grows downward
	XV, YV float64 // Velocity in world units per frame
	Color  core.Color

	width  float64
	height float64
}

// NewEntity creates a resting entity.
func NewEntity(x, y, width, height float64, color core.Color) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Color:  color,
		width:  width,
		height: height,
	}
}

// Width returns the entity width.
func (e *Entity) Width() float64 {
	return e.width
}

// Height returns the entity height.
func (e *Entity) Height() float64 {
	return e.height
}

// Draw paints the entity as a filled rectangle.
func (e *Entity) Draw(c core.Canvas) {
	if c == nil {
		return
	}
	c.FillRect(e.X, e.Y, e.width, e.height, e.Color)
}

// DecayXVelocity moves XV one step toward zero and snaps it to zero once
// less than a step remains. It must run last in a horizontal velocity
// update so input applied this frame takes effect first.
func (e *Entity) DecayXVelocity(step float64) {
	if e.XV == 0 {
		return
	}
	slowDown := step
	if e.XV > 0 {
		slowDown = -step
	}
	e.XV += slowDown

	if math.Abs(e.XV) < math.Abs(slowDown) {
		e.XV = 0
	}
}
