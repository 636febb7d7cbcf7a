package platformer

import "github.com/vovakirdan/platformer/internal/core"

// Player is the controllable rectangle. It owns the world's platforms and
// drives the whole per-frame update.
type Player struct {
	Entity
	keys       Keys
	isCollided bool
	platforms  []*Platform
	rules      Rules
}

// NewPlayer creates a player with no platforms.
func NewPlayer(rules Rules, x, y, width, height float64, color core.Color) *Player {
	return &Player{
		Entity: NewEntity(x, y, width, height, color),
		rules:  rules,
	}
}

// AddPlatform appends a platform bound to this player and returns it.
// Insertion order is update and draw order.
func (p *Player) AddPlatform(x, y, width, height float64, color core.Color) *Platform {
	pl := NewPlatform(p, p.rules, x, y, width, height, color)
	p.platforms = append(p.platforms, pl)
	return pl
}

// Platforms returns the owned platforms.
func (p *Player) Platforms() []*Platform {
	return p.platforms
}

// Position returns the top-left corner.
func (p *Player) Position() (x, y float64) {
	return p.X, p.Y
}

// Keys returns the held direction keys.
func (p *Player) Keys() Keys {
	return p.keys
}

// Collided reports whether YV was zero after the last collision check.
// This is also true when YV is zero for reasons other than landing.
func (p *Player) Collided() bool {
	return p.isCollided
}

// SetLeft records a press or release of the left key.
func (p *Player) SetLeft(pressed bool) {
	p.keys.Left = pressed
}

// SetRight records a press or release of the right key.
func (p *Player) SetRight(pressed bool) {
	p.keys.Right = pressed
}

// Jump applies the jump impulse when YV is zero or the last collision
// check left it at zero.
func (p *Player) Jump() {
	if p.YV == 0 || p.isCollided {
		p.YV -= p.rules.JumpImpulse
	}
}

// Descend nudges the player downward. Every call applies.
func (p *Player) Descend() {
	p.YV += p.rules.DescendImpulse
}

// Update advances the world by one frame. The order matters: platforms
// move first so the collision check sees this frame's positions.
func (p *Player) Update(view Viewport, c core.Canvas) {
	p.updatePlatforms(view, c)
	p.checkCollision()

	p.X += p.XV
	p.Y += p.YV

	p.updateYVelocity(view)
	p.updateXVelocity(view)

	p.Draw(c)
}

// DrawWorld paints every platform and then the player without simulating.
func (p *Player) DrawWorld(c core.Canvas) {
	for _, pl := range p.platforms {
		pl.Draw(c)
	}
	p.Draw(c)
}

func (p *Player) updatePlatforms(view Viewport, c core.Canvas) {
	for _, pl := range p.platforms {
		pl.Update(view, c)
	}
}

// checkCollision zeroes YV when the player's bottom edge would reach or
// cross a platform top this frame. Position is not snapped.
func (p *Player) checkCollision() {
	playerBottomY := p.Y + p.height
	playerEndX := p.X + p.width

	for _, pl := range p.platforms {
		platformEndX := pl.X + pl.width

		hasXCollision := playerEndX >= pl.X && p.X <= platformEndX
		hasYCollision := playerBottomY <= pl.Y && playerBottomY+p.YV >= pl.Y

		if hasXCollision && hasYCollision {
			p.YV = 0
		}
	}

	p.isCollided = p.YV == 0
}

// updateYVelocity applies gravity, or stops the player at the viewport floor.
func (p *Player) updateYVelocity(view Viewport) {
	if p.Y+p.height+p.YV <= view.Height {
		p.YV += p.rules.Gravity
	} else {
		p.YV = 0
	}
}

// updateXVelocity moves the player freely between the border bands. Inside
// a band with the matching key held, the player's velocity is handed to the
// platforms instead so the world scrolls while the player stays put.
func (p *Player) updateXVelocity(view Viewport) {
	leftHit, rightHit := p.rules.borderHits(p.X, p.width, view)

	if (p.keys.Left && leftHit) || (p.keys.Right && rightHit) {
		p.shiftPlatforms(-p.XV)
		p.XV = 0
		return
	}

	change := 0.0
	if p.keys.Left {
		change = -p.rules.InputAccel
	}
	if p.keys.Right {
		change = p.rules.InputAccel
	}

	if p.scrolling() {
		p.shiftPlatforms(-change)
	} else {
		p.XV += change
	}

	p.DecayXVelocity(p.rules.Friction)
}

// scrolling reports whether any platform is still moving.
func (p *Player) scrolling() bool {
	for _, pl := range p.platforms {
		if pl.XV != 0 {
			return true
		}
	}
	return false
}

func (p *Player) shiftPlatforms(dx float64) {
	for _, pl := range p.platforms {
		pl.XV += dx
	}
}
