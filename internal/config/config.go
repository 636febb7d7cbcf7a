// Package config provides YAML-based configuration loading for the
// platformer: physics constants, world generation and frontend settings.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics   PhysicsConfig       `yaml:"physics"`
	Player    PlayerConfig        `yaml:"player"`
	Platforms PlatformsConfig     `yaml:"platforms"`
	Staircase []PlatformPlacement `yaml:"staircase"`
	Render    RenderConfig        `yaml:"render"`
	Input     InputConfig         `yaml:"input"`
	Window    WindowConfig        `yaml:"window"`
}

// PhysicsConfig defines the per-frame movement rules.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Added to YV every airborne frame
	Friction       float64 `yaml:"friction"`        // XV decay step per frame
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Subtracted from YV on jump
	DescendImpulse float64 `yaml:"descend_impulse"` // Added to YV on descend
	InputAccel     float64 `yaml:"input_accel"`     // XV change per frame while a direction is held
	BorderInset    float64 `yaml:"border_inset"`    // Distance from each viewport edge where scrolling starts
}

// PlayerConfig defines the player's spawn rectangle.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// PlatformsConfig defines how scatter platforms are generated.
// Ranges are half-open: [min, max).
type PlatformsConfig struct {
	Count    int     `yaml:"count"`
	MinX     int     `yaml:"min_x"`
	MaxX     int     `yaml:"max_x"`
	MaxY     int     `yaml:"max_y"`
	Band     int     `yaml:"band"` // Y positions snap down to multiples of this
	MinWidth int     `yaml:"min_width"`
	MaxWidth int     `yaml:"max_width"`
	Height   float64 `yaml:"height"`
	Color    string  `yaml:"color"`
}

// PlatformPlacement is a hand-placed platform. Zero width means the width
// is rolled like any other platform.
type PlatformPlacement struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width,omitempty"`
}

// RenderConfig maps world units onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// InputConfig tunes the terminal frontend's held-key emulation.
type InputConfig struct {
	InitialHoldMS int `yaml:"initial_hold_ms"` // A fresh press stays held this long waiting for the first repeat
	HoldMS        int `yaml:"hold_ms"`         // A direction counts as released after this long without a repeat
}

// WindowConfig sets the initial size of the graphical window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}
