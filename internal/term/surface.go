// Package term renders the raycaster into a terminal through tcell. Each
// terminal cell is treated as one pixel.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// lineRune marks cells a DrawLine passes through.
const lineRune = '•'

// Surface implements game.Surface on a tcell screen.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialised tcell screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

func (s *Surface) Clear(c color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

// FillRect paints every cell whose centre lies inside the rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sw, sh := s.screen.Size()
	x0 := clamp(int(math.Ceil(x-0.5)), 0, sw)
	y0 := clamp(int(math.Ceil(y-0.5)), 0, sh)
	x1 := clamp(int(math.Ceil(x+w-0.5)), 0, sw)
	y1 := clamp(int(math.Ceil(y+h-0.5)), 0, sh)
	st := tcell.StyleDefault.Background(toTcell(c))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, st)
		}
	}
}

// DrawLine walks the segment with Bresenham's algorithm, keeping each cell's
// background and drawing lineRune in the line colour.
func (s *Surface) DrawLine(x0, y0, x1, y1 float64, c color.Color) {
	ax, ay := int(math.Floor(x0)), int(math.Floor(y0))
	bx, by := int(math.Floor(x1)), int(math.Floor(y1))
	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	fg := toTcell(c)
	sw, sh := s.screen.Size()
	err := dx + dy
	for {
		if ax >= 0 && ax < sw && ay >= 0 && ay < sh {
			_, _, st, _ := s.screen.GetContent(ax, ay)
			s.screen.SetContent(ax, ay, lineRune, nil, st.Foreground(fg))
		}
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
