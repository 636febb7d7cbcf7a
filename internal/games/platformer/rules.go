package platformer

import "github.com/vovakirdan/platformer/internal/config"

// Rules are the fixed physics constants of a world.
type Rules struct {
	Gravity        float64
	Friction       float64
	JumpImpulse    float64
	DescendImpulse float64
	InputAccel     float64
	BorderInset    float64
}

// DefaultRules returns the stock constants.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultPlatformerConfig().Physics)
}

// RulesFromConfig copies physics settings into Rules.
func RulesFromConfig(p config.PhysicsConfig) Rules {
	return Rules{
		Gravity:        p.Gravity,
		Friction:       p.Friction,
		JumpImpulse:    p.JumpImpulse,
		DescendImpulse: p.DescendImpulse,
		InputAccel:     p.InputAccel,
		BorderInset:    p.BorderInset,
	}
}

// borderHits reports whether a span starting at x touches the left or right
// border band of the viewport.
func (r Rules) borderHits(x, width float64, view Viewport) (left, right bool) {
	return x <= r.BorderInset, x+width >= view.Width-r.BorderInset
}

// Viewport is the playable area in world units. Border bands are measured
// from its width and the hard floor sits at its height.
type Viewport struct {
	Width  float64
	Height float64
}
