package game

// RenderScene paints the first-person view: one strip per ray, left to right,
// spread evenly across the surface width.
func RenderScene(s Surface, rays []RayHit, heading float64, cfg Config) {
	if len(rays) == 0 {
		return
	}
	sw, sh := s.Size()
	w, h := float64(sw), float64(sh)
	colW := w / float64(len(rays))
	pal := cfg.Palette

	for i, ray := range rays {
		x := float64(i) * colW
		st := ColumnStrip(ray, heading, h, cfg)
		s.FillRect(x, st.WallTop, colW, st.WallHeight, st.Shade)
		s.FillRect(x, st.FloorTop, colW, h-st.FloorTop, pal.Floor)
		s.FillRect(x, 0, colW, st.WallTop, pal.Ceiling)
	}
}
