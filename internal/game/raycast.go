package game

import "math"

// tanEpsilon bounds the ray slope away from 0 and infinity. A ray lying
// exactly along an axis would otherwise divide by zero in one of the two
// grid-line searches; clamped, that search leaves the grid on its first step
// and the other search supplies the hit.
const tanEpsilon = 1e-9

// RayHit is the nearest wall struck by one ray, measured from the caster origin.
type RayHit struct {
	Angle    float64 // cast angle in radians
	Distance float64 // straight-line distance to the hit point
	Vertical bool    // true if a vertical grid line (x = k*cellSize) was struck
	HitX     float64 // world-space hit point
	HitY     float64
	Wall     int  // cell value of the wall struck, 0 if Escaped
	Escaped  bool // the search left the grid without striking a wall
}

// Caster casts rays from a fixed origin against a GridMap.
type Caster struct {
	grid *GridMap
	x, y float64
}

// NewCaster returns a caster positioned at the player's location.
func NewCaster(gm *GridMap, p PlayerState) *Caster {
	return &Caster{grid: gm, x: p.X, y: p.Y}
}

// CastRay returns the nearer of the vertical-line and horizontal-line hits.
// On equal distances the vertical hit wins.
func (c *Caster) CastRay(angle float64) RayHit {
	v := c.VerticalHit(angle)
	h := c.HorizontalHit(angle)
	if h.Distance >= v.Distance {
		return v
	}
	return h
}

// SweepField casts count rays across fov, centred on center, ordered left to
// right. Ray i is cast at center - fov/2 + i*fov/count.
func (c *Caster) SweepField(center, fov float64, count int) []RayHit {
	if count <= 0 {
		return nil
	}
	start := center - fov/2
	step := fov / float64(count)
	hits := make([]RayHit, count)
	for i := range hits {
		hits[i] = c.CastRay(start + float64(i)*step)
	}
	return hits
}

// VerticalHit walks the ray from one vertical grid line to the next until
// the cell beyond the line is a wall or the grid is left behind.
func (c *Caster) VerticalHit(angle float64) RayHit {
	s := c.grid.CellSize
	tan := clampTan(math.Tan(angle))
	right := math.Mod(math.Floor((angle-math.Pi/2)/math.Pi), 2) != 0

	x := math.Floor(c.x/s) * s
	stepX := -s
	if right {
		x += s
		stepX = s
	}
	y := c.y + (x-c.x)*tan
	stepY := stepX * tan

	for i := 0; i < c.maxSteps(); i++ {
		col := floorDiv(x, s)
		if !right {
			col--
		}
		row := floorDiv(y, s)
		if !c.grid.InBounds(col, row) {
			break
		}
		if w := c.grid.CellAt(col, row); w != 0 {
			return c.hitAt(angle, x, y, true, w)
		}
		x += stepX
		y += stepY
	}
	return c.escape(angle, true)
}

// HorizontalHit is VerticalHit with the roles of x and y swapped.
func (c *Caster) HorizontalHit(angle float64) RayHit {
	s := c.grid.CellSize
	tan := clampTan(math.Tan(angle))
	up := math.Mod(math.Floor(angle/math.Pi), 2) != 0

	y := math.Floor(c.y/s) * s
	stepY := -s
	if !up {
		y += s
		stepY = s
	}
	x := c.x + (y-c.y)/tan
	stepX := stepY / tan

	for i := 0; i < c.maxSteps(); i++ {
		col := floorDiv(x, s)
		row := floorDiv(y, s)
		if up {
			row--
		}
		if !c.grid.InBounds(col, row) {
			break
		}
		if w := c.grid.CellAt(col, row); w != 0 {
			return c.hitAt(angle, x, y, false, w)
		}
		x += stepX
		y += stepY
	}
	return c.escape(angle, false)
}

func (c *Caster) hitAt(angle, x, y float64, vertical bool, wall int) RayHit {
	return RayHit{
		Angle:    angle,
		Distance: math.Hypot(x-c.x, y-c.y),
		Vertical: vertical,
		HitX:     x,
		HitY:     y,
		Wall:     wall,
	}
}

// escape terminates a search that left the grid. The hit is placed where the
// ray crosses the world boundary rather than at the overshooting probe point.
func (c *Caster) escape(angle float64, vertical bool) RayHit {
	w, h := c.grid.WorldSize()
	dx, dy := math.Cos(angle), math.Sin(angle)
	d := rayExitDistance(c.x, c.y, dx, dy, w, h)
	return RayHit{
		Angle:    angle,
		Distance: d,
		Vertical: vertical,
		HitX:     c.x + dx*d,
		HitY:     c.y + dy*d,
		Escaped:  true,
	}
}

// maxSteps bounds a search: every step crosses one grid line on its primary
// axis, so no in-bounds walk can be longer than the grid is wide or tall.
func (c *Caster) maxSteps() int {
	return c.grid.Cols + c.grid.Rows + 2
}

// rayExitDistance returns the distance along the unit direction (dx,dy) from
// (ox,oy) to where the ray leaves the box [0,maxX]x[0,maxY]. It returns 0 when
// the ray never passes through the box ahead of the origin.
func rayExitDistance(ox, oy, dx, dy, maxX, maxY float64) float64 {
	tMin := 0.0
	tMax := math.Inf(1)

	// X slab
	if math.Abs(dx) < 1e-12 {
		if ox < 0 || ox > maxX {
			return 0
		}
	} else {
		t1 := -ox / dx
		t2 := (maxX - ox) / dx
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	// Y slab
	if math.Abs(dy) < 1e-12 {
		if oy < 0 || oy > maxY {
			return 0
		}
	} else {
		t1 := -oy / dy
		t2 := (maxY - oy) / dy
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	if tMin > tMax || math.IsInf(tMax, 1) {
		return 0
	}
	return tMax
}

// clampTan keeps |t| within [tanEpsilon, 1/tanEpsilon], preserving its sign.
// An exact zero is treated as positive.
func clampTan(t float64) float64 {
	sign := 1.0
	if t < 0 {
		sign = -1
	}
	a := math.Abs(t)
	if a < tanEpsilon {
		a = tanEpsilon
	} else if a > 1/tanEpsilon {
		a = 1 / tanEpsilon
	}
	return sign * a
}

func floorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}
