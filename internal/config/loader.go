package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/platformer/internal/core"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports configuration values the world cannot be built from.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Platforms.Count < 0 {
		errs = append(errs, fmt.Errorf("platforms.count must not be negative, got %d", c.Platforms.Count))
	}
	if c.Platforms.Count > 0 {
		if c.Platforms.MinX >= c.Platforms.MaxX {
			errs = append(errs, fmt.Errorf("platforms.min_x (%d) must be below max_x (%d)", c.Platforms.MinX, c.Platforms.MaxX))
		}
		if c.Platforms.MaxY <= 0 {
			errs = append(errs, fmt.Errorf("platforms.max_y must be positive, got %d", c.Platforms.MaxY))
		}
		if c.Platforms.Band <= 0 {
			errs = append(errs, fmt.Errorf("platforms.band must be positive, got %d", c.Platforms.Band))
		}
	}
	if c.Platforms.MinWidth <= 0 || c.Platforms.MinWidth >= c.Platforms.MaxWidth {
		errs = append(errs, fmt.Errorf("platforms width range [%d, %d) is invalid", c.Platforms.MinWidth, c.Platforms.MaxWidth))
	}
	if c.Platforms.Height <= 0 {
		errs = append(errs, fmt.Errorf("platforms.height must be positive, got %v", c.Platforms.Height))
	}
	if _, ok := core.ParseColor(c.Player.Color); !ok {
		errs = append(errs, fmt.Errorf("unknown player color %q", c.Player.Color))
	}
	if _, ok := core.ParseColor(c.Platforms.Color); !ok {
		errs = append(errs, fmt.Errorf("unknown platform color %q", c.Platforms.Color))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("render cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight))
	}
	if c.Input.InitialHoldMS <= 0 {
		errs = append(errs, fmt.Errorf("input.initial_hold_ms must be positive, got %d", c.Input.InitialHoldMS))
	}
	if c.Input.HoldMS <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// PlayerColor returns the parsed player color, falling back to red.
func (c PlatformerConfig) PlayerColor() core.Color {
	if col, ok := core.ParseColor(c.Player.Color); ok {
		return col
	}
	return core.ColorRed
}

// PlatformColor returns the parsed platform color, falling back to the default ink.
func (c PlatformerConfig) PlatformColor() core.Color {
	if col, ok := core.ParseColor(c.Platforms.Color); ok {
		return col
	}
	return core.ColorDefault
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
