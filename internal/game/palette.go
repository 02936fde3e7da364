package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette is the flat colour set used by both renderers.
type Palette struct {
	Background color.RGBA
	Ceiling    color.RGBA
	Floor      color.RGBA
	Wall       color.RGBA // faces struck on a horizontal grid line
	WallDark   color.RGBA // faces struck on a vertical grid line
	Ray        color.RGBA
	MapWall    color.RGBA
	Player     color.RGBA
}

// DefaultPalette returns the reference colours.
func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Red,
		Ceiling:    colornames.White,
		Floor:      color.RGBA{R: 0xd5, G: 0x2b, B: 0x1e, A: 0xff},
		Wall:       color.RGBA{R: 0x01, G: 0x3a, B: 0xa6, A: 0xff},
		WallDark:   color.RGBA{R: 0x01, G: 0x29, B: 0x75, A: 0xff},
		Ray:        color.RGBA{R: 0xff, G: 0xa6, B: 0x00, A: 0xff},
		MapWall:    colornames.Gray,
		Player:     colornames.Blue,
	}
}

// WallShade picks the face colour for a hit. Vertical-line hits are darker.
func (p Palette) WallShade(vertical bool) color.RGBA {
	if vertical {
		return p.WallDark
	}
	return p.Wall
}
