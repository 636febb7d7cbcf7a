package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in cells
	ScreenH  int     // Screen height in cells
	CellW    float64 // World units covered by one cell horizontally
	CellH    float64 // World units covered by one cell vertically
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		CellW:    10,
		CellH:    20,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WorldSize returns the playable area in world units.
func (c RuntimeConfig) WorldSize() (w, h float64) {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return float64(c.ScreenW) * cw, float64(c.ScreenH) * ch
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Frame     int     // Simulated frames since the last reset
	Paused    bool    // Whether the game is paused
	PlayerX   float64 // Player top-left corner
	PlayerY   float64
	PlayerXV  float64 // Player velocity
	PlayerYV  float64
	Collided  bool // Player's vertical velocity was zero after the last collision check
	Platforms int  // Number of platforms in the world
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
