package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:        0.5,
			Friction:       0.5,
			JumpImpulse:    15,
			DescendImpulse: 1,
			InputAccel:     1,
			BorderInset:    200,
		},
		Player: PlayerConfig{
			X:      500,
			Y:      30,
			Width:  30,
			Height: 30,
			Color:  "red",
		},
		Platforms: PlatformsConfig{
			Count:    10000,
			MinX:     -100000,
			MaxX:     100000,
			MaxY:     1200,
			Band:     50,
			MinWidth: 20,
			MaxWidth: 500,
			Height:   10,
			Color:    "black",
		},
		Staircase: []PlatformPlacement{
			{X: 1200, Y: 100},
			{X: 1000, Y: 200},
			{X: 800, Y: 300},
			{X: 500, Y: 400},
			{X: 300, Y: 500},
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Input: InputConfig{
			InitialHoldMS: 700,
			HoldMS:        300,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Platformer",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
