package game

import "math"

// MinimapOptions places the overhead view on the surface.
type MinimapOptions struct {
	OffsetX float64
	OffsetY float64
	Scale   float64 // screen pixels per world unit
}

// MinimapOptionsFrom reads the minimap placement out of cfg.
func MinimapOptionsFrom(cfg Config) MinimapOptions {
	return MinimapOptions{OffsetX: cfg.MinimapX, OffsetY: cfg.MinimapY, Scale: cfg.MinimapScale}
}

// RenderMinimap draws the grid, one line per ray and the player marker from
// above. It reuses the ray hits as-is and casts nothing itself.
func RenderMinimap(s Surface, gm *GridMap, p PlayerState, rays []RayHit, opt MinimapOptions, cfg Config) {
	pal := cfg.Palette
	cs := gm.CellSize * opt.Scale
	for row := 0; row < gm.Rows; row++ {
		for col := 0; col < gm.Cols; col++ {
			if gm.IsWall(col, row) {
				s.FillRect(opt.OffsetX+float64(col)*cs, opt.OffsetY+float64(row)*cs, cs, cs, pal.MapWall)
			}
		}
	}

	px, py := opt.project(p.X, p.Y)
	for _, r := range rays {
		ex, ey := opt.project(p.X+math.Cos(r.Angle)*r.Distance, p.Y+math.Sin(r.Angle)*r.Distance)
		s.DrawLine(px, py, ex, ey, pal.Ray)
	}

	half := cfg.PlayerSize / 2
	s.FillRect(px-half, py-half, cfg.PlayerSize, cfg.PlayerSize, pal.Player)

	reach := cfg.PlayerSize * 2
	hx, hy := opt.project(p.X+math.Cos(p.Heading)*reach, p.Y+math.Sin(p.Heading)*reach)
	s.DrawLine(px, py, hx, hy, pal.Player)
}

func (o MinimapOptions) project(x, y float64) (float64, float64) {
	return o.OffsetX + x*o.Scale, o.OffsetY + y*o.Scale
}
