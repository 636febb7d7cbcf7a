package gfx

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDFontSize is the point size of the status line.
const HUDFontSize = 14

// loadFace parses a TrueType font at the given size.
func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// hudFace returns the Go Regular face used for the HUD.
func hudFace() (font.Face, error) {
	return loadFace(goregular.TTF, HUDFontSize)
}
