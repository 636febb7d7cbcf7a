// Package level loads hand-placed platform layouts from Tiled (TMX) maps.
// It has no dependency on the simulation; the world builder consumes the
// placements it returns.
package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/platformer/internal/config"
)

// Object group names read from a map.
const (
	PlatformsGroup = "Platforms"
	SpawnGroup     = "PlayerSpawn"
)

// DefaultPath is the embedded level used when no file is given.
const DefaultPath = "levels/staircase.tmx"

//go:embed levels/*.tmx
var embedded embed.FS

// ErrNoPlatforms is returned for maps without a usable Platforms group.
var ErrNoPlatforms = errors.New("level: map has no platforms")

// Spawn is the player's starting corner.
type Spawn struct {
	X, Y float64
}

// Level is a parsed platform layout.
type Level struct {
	Name      string
	Width     int // Map size in world units
	Height    int
	Platforms []config.PlatformPlacement // In map object order
	Spawn     *Spawn                     // nil when the map sets none
}

// Load parses a TMX file from fsys. Only object groups are read; tile
// layers are ignored. Object width becomes the platform width, so objects
// drawn as points get a rolled width.
func Load(fsys fs.FS, path string) (*Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("level: load TMX %s: %w", path, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case PlatformsGroup:
			for _, o := range og.Objects {
				lvl.Platforms = append(lvl.Platforms, config.PlatformPlacement{
					X:     o.X,
					Y:     o.Y,
					Width: o.Width,
				})
			}
		case SpawnGroup:
			if len(og.Objects) > 0 && lvl.Spawn == nil {
				o := og.Objects[0]
				lvl.Spawn = &Spawn{X: o.X, Y: o.Y}
			}
		}
	}

	if len(lvl.Platforms) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPlatforms, path)
	}
	return lvl, nil
}

// LoadFile parses a TMX file from disk.
func LoadFile(path string) (*Level, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return Load(os.DirFS(dir), name)
}

// Default returns the embedded staircase level.
func Default() (*Level, error) {
	return Load(embedded, DefaultPath)
}
