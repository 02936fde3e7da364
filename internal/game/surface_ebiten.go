package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageSurface adapts an ebiten image to Surface.
type imageSurface struct {
	img *ebiten.Image
}

func newImageSurface(img *ebiten.Image) imageSurface {
	return imageSurface{img: img}
}

func (s imageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s imageSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s imageSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s imageSurface) DrawLine(x0, y0, x1, y1 float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), 1.0, c, false)
}
