package game

import "image/color"

// Surface is the 2D drawing target both renderers paint onto. Coordinates are
// screen pixels with the origin at the top-left.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	DrawLine(x0, y0, x1, y1 float64, c color.Color)
}
