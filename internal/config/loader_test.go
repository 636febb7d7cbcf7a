package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/platformer/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded YAML and DefaultPlatformerConfig() disagree:\nyaml: %+v\ngo:   %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadCustomPathOverridesOnlySetKeys(t *testing.T) {
	cfg, err := LoadPlatformer(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("LoadPlatformer failed: %v", err)
	}

	if cfg.Physics.Gravity != 1 {
		t.Errorf("gravity = %v, expected 1", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != 15 {
		t.Errorf("unset jump_impulse should keep default 15, got %v", cfg.Physics.JumpImpulse)
	}
	if cfg.Platforms.Count != 3 {
		t.Errorf("platforms.count = %d, expected 3", cfg.Platforms.Count)
	}
	if cfg.Platforms.MaxWidth != 500 {
		t.Errorf("unset max_width should keep default 500, got %d", cfg.Platforms.MaxWidth)
	}
	if len(cfg.Staircase) != 1 || cfg.Staircase[0].Width != 40 {
		t.Errorf("staircase should be replaced by the file's list, got %+v", cfg.Staircase)
	}
	if cfg.Render.CellWidth != 5 || cfg.Render.CellHeight != 20 {
		t.Errorf("render = %+v, expected 5x20", cfg.Render)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPlatformer(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	_, err := LoadPlatformer(filepath.Join("testdata", "bad.yaml"))
	if err == nil {
		t.Fatal("invalid custom config should be an error")
	}
	for _, want := range []string{"width range", "cell size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(path); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
		want   string
	}{
		{"player size", func(c *PlatformerConfig) { c.Player.Width = 0 }, "player size"},
		{"x range", func(c *PlatformerConfig) { c.Platforms.MinX = c.Platforms.MaxX }, "min_x"},
		{"band", func(c *PlatformerConfig) { c.Platforms.Band = 0 }, "band"},
		{"color", func(c *PlatformerConfig) { c.Player.Color = "plaid" }, "player color"},
		{"hold", func(c *PlatformerConfig) { c.Input.HoldMS = 0 }, "input.hold_ms"},
		{"initial hold", func(c *PlatformerConfig) { c.Input.InitialHoldMS = 0 }, "initial_hold_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateSkipsScatterRangesWithoutScatter(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Platforms.Count = 0
	cfg.Platforms.Band = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("scatter ranges are irrelevant with count 0: %v", err)
	}
}

func TestColors(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	if cfg.PlayerColor() != core.ColorRed {
		t.Errorf("PlayerColor() = %v, expected red", cfg.PlayerColor())
	}
	if cfg.PlatformColor() != core.ColorDefault {
		t.Errorf("PlatformColor() = %v, expected default ink", cfg.PlatformColor())
	}
}
