// Package gfx runs a world in a desktop window using Ebiten.
// Worlds draw into a core.DrawList during Update, which Draw replays.
package gfx

import (
	"image/color"

	"github.com/vovakirdan/platformer/internal/core"
)

// Background is the window clear color.
var Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// palette maps core colors to RGBA. The default color is the ink drawn on
// the light background.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	core.ColorRed:           {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	core.ColorGreen:         {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	core.ColorYellow:        {R: 0xcc, G: 0xaa, B: 0x00, A: 0xff},
	core.ColorBlue:          {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	core.ColorMagenta:       {R: 0xc0, G: 0x00, B: 0xc0, A: 0xff},
	core.ColorCyan:          {R: 0x00, G: 0xa0, B: 0xa0, A: 0xff},
	core.ColorWhite:         {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	core.ColorBrightGreen:   {R: 0x55, G: 0xdd, B: 0x55, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xdd, B: 0x33, A: 0xff},
	core.ColorBrightBlue:    {R: 0x55, G: 0x55, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x55, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x55, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorBrightWhite:   {R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// RGBA returns the window color for a core color. Unknown colors use ink.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
