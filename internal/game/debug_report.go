package game

import (
	"fmt"
	"math"
	"strings"
)

// RayStats summarises one sweep.
type RayStats struct {
	Count    int
	Vertical int
	Escaped  int
	MinDist  float64
	MaxDist  float64
	MeanDist float64
	Center   RayHit // the ray nearest the middle column
}

// SummarizeRays computes RayStats for a sweep. An empty sweep yields zeros.
func SummarizeRays(rays []RayHit) RayStats {
	st := RayStats{Count: len(rays)}
	if len(rays) == 0 {
		return st
	}
	st.MinDist = math.Inf(1)
	sum := 0.0
	for _, r := range rays {
		if r.Vertical {
			st.Vertical++
		}
		if r.Escaped {
			st.Escaped++
		}
		st.MinDist = math.Min(st.MinDist, r.Distance)
		st.MaxDist = math.Max(st.MaxDist, r.Distance)
		sum += r.Distance
	}
	st.MeanDist = sum / float64(len(rays))
	st.Center = rays[len(rays)/2]
	return st
}

// FrameReport renders a plain-text description of the latest frame plus the
// tail of the event log, suitable for pasting into a bug report.
func (s *Simulation) FrameReport(logTail int) string {
	p := s.Player
	st := SummarizeRays(s.rays)

	var b strings.Builder
	fmt.Fprintf(&b, "--- Raycaster frame report ---\n")
	fmt.Fprintf(&b, "tick=%d grid=%dx%d cell=%.0f enclosed=%v\n",
		s.tick, s.Grid.Cols, s.Grid.Rows, s.Grid.CellSize, s.Grid.Enclosed())
	col, row := s.Grid.WorldToCell(p.X, p.Y)
	fmt.Fprintf(&b, "player pos=(%.2f,%.2f) cell=(%d,%d) heading=%.2fdeg speed=%.2f\n",
		p.X, p.Y, col, row, p.Heading*180/math.Pi, p.Speed)
	fmt.Fprintf(&b, "rays=%d vertical=%d horizontal=%d escaped=%d\n",
		st.Count, st.Vertical, st.Count-st.Vertical, st.Escaped)
	if st.Count > 0 {
		fmt.Fprintf(&b, "distance min/avg/max=%.2f/%.2f/%.2f\n", st.MinDist, st.MeanDist, st.MaxDist)
		c := st.Center
		face := "horizontal"
		if c.Vertical {
			face = "vertical"
		}
		fmt.Fprintf(&b, "center ray angle=%.2fdeg dist=%.2f face=%s hit=(%.2f,%.2f) wall=%d\n",
			c.Angle*180/math.Pi, c.Distance, face, c.HitX, c.HitY, c.Wall)
	}
	if logTail > 0 {
		b.WriteString("events:\n")
		b.WriteString(s.Log.Format(logTail))
	}
	return b.String()
}
