package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize  = 13
	hudLineH     = 17
	hudPadX      = 6
	hudPadY      = 4
	hudMarginTop = 8
)

type hudFont struct {
	face *text.GoTextFace
}

func newHUDFont() (*hudFont, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &hudFont{face: &text.GoTextFace{Source: src, Size: hudFontSize}}, nil
}

// hudLines returns the HUD text for the current frame.
func (g *Game) hudLines() []string {
	p := g.sim.Player
	st := SummarizeRays(g.sim.rays)
	return []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.sim.TickCount()),
		fmt.Sprintf("pos (%.0f, %.0f)  heading %.0f°", p.X, p.Y, p.Heading*180/math.Pi),
		fmt.Sprintf("centre %.1f  escaped %d", st.Center.Distance, st.Escaped),
		"W/S move  A/D or arrows turn  C copy  H hud",
	}
}

// drawHUD renders a small panel in the top-right corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	maxW := 0.0
	for _, l := range lines {
		w, _ := text.Measure(l, g.hud.face, hudLineH)
		maxW = math.Max(maxW, w)
	}
	boxW := float32(maxW + hudPadX*2)
	boxH := float32(len(lines)*hudLineH + hudPadY*2)
	bx := float32(g.width) - boxW - 8
	by := float32(hudMarginTop)

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 24, A: 200}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 80, G: 110, B: 180, A: 200}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(bx)+hudPadX, float64(by)+hudPadY)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = hudLineH
	text.Draw(screen, strings.Join(lines, "\n"), g.hud.face, op)
}
