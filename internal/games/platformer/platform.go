package platformer

import "github.com/vovakirdan/platformer/internal/core"

// Keys is the held state of the two direction keys.
type Keys struct {
	Left  bool
	Right bool
}

// PlayerView is the read-only slice of player state platforms react to.
type PlayerView interface {
	Position() (x, y float64)
	Width() float64
	Keys() Keys
}

// Platform is a rectangle the player can land on. Platforms never collide
// with each other; they only move horizontally to scroll the world.
type Platform struct {
	Entity
	player PlayerView
	rules  Rules
}

// NewPlatform creates a platform that watches the given player.
func NewPlatform(player PlayerView, rules Rules, x, y, width, height float64, color core.Color) *Platform {
	return &Platform{
		Entity: NewEntity(x, y, width, height, color),
		player: player,
		rules:  rules,
	}
}

// Update integrates position, nudges XV from the player's border state, and draws.
func (p *Platform) Update(view Viewport, c core.Canvas) {
	p.X += p.XV
	p.Y += p.YV

	p.updateXVelocity(view)

	p.Draw(c)
}

// updateXVelocity pushes the platform against the player's held direction
// while the player sits in a border band. Both pushes apply if both keys
// are held in their bands.
func (p *Platform) updateXVelocity(view Viewport) {
	px, _ := p.player.Position()
	leftHit, rightHit := p.rules.borderHits(px, p.player.Width(), view)
	keys := p.player.Keys()

	if keys.Left && leftHit {
		p.XV += p.rules.InputAccel
	}
	if keys.Right && rightHit {
		p.XV -= p.rules.InputAccel
	}

	p.DecayXVelocity(p.rules.Friction)
}
