package platformer

import (
	"math/rand"

	"github.com/vovakirdan/platformer/internal/config"
)

// Layout describes what a world is built from.
type Layout struct {
	Scatter int                        // Number of randomly placed platforms
	Fixed   []config.PlatformPlacement // Hand-placed platforms, appended after the scatter
	SpawnX  float64
	SpawnY  float64
}

// ScrollerLayout is the full world: the configured scatter plus the staircase.
func ScrollerLayout(cfg config.PlatformerConfig) Layout {
	return Layout{
		Scatter: cfg.Platforms.Count,
		Fixed:   cfg.Staircase,
		SpawnX:  cfg.Player.X,
		SpawnY:  cfg.Player.Y,
	}
}

// BuildWorld creates the player and all its platforms. The RNG is only
// consulted here. Per scatter platform it draws y, then x, then width;
// fixed platforms without a width draw only the width.
func BuildWorld(cfg config.PlatformerConfig, layout Layout, rng *rand.Rand) *Player {
	rules := RulesFromConfig(cfg.Physics)
	pc := cfg.Platforms
	color := cfg.PlatformColor()

	player := NewPlayer(rules, layout.SpawnX, layout.SpawnY, cfg.Player.Width, cfg.Player.Height, cfg.PlayerColor())
	player.platforms = make([]*Platform, 0, layout.Scatter+len(layout.Fixed))

	for i := 0; i < layout.Scatter; i++ {
		y := randInt(rng, 0, pc.MaxY)
		if pc.Band > 0 {
			y -= y % pc.Band
		}
		x := randInt(rng, pc.MinX, pc.MaxX)
		w := randInt(rng, pc.MinWidth, pc.MaxWidth)
		player.AddPlatform(float64(x), float64(y), float64(w), pc.Height, color)
	}

	for _, f := range layout.Fixed {
		w := f.Width
		if w <= 0 {
			w = float64(randInt(rng, pc.MinWidth, pc.MaxWidth))
		}
		player.AddPlatform(f.X, f.Y, w, pc.Height, color)
	}

	return player
}

// randInt returns a uniform integer in [min, max).
func randInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min)
}
