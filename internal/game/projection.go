package game

import (
	"image/color"
	"math"
)

// minProjectDistance keeps a wall the player is standing on from projecting
// to an infinite height.
const minProjectDistance = 1e-6

// FixFisheye converts a radial ray distance to the perpendicular distance from
// the view plane, so flat walls stay flat across the field of view.
func FixFisheye(distance, rayAngle, heading float64) float64 {
	return distance * math.Cos(rayAngle-heading)
}

// ProjectedWallHeight returns the on-screen height of a wall at the given
// corrected distance. Height falls off as 1/distance.
func ProjectedWallHeight(distance float64, cfg Config) float64 {
	if distance < minProjectDistance {
		distance = minProjectDistance
	}
	return cfg.CellSize * cfg.WallHeight / distance * cfg.ProjScale
}

// Strip is one screen column of the 3D view, split into ceiling, wall and floor.
type Strip struct {
	WallTop    float64
	WallHeight float64 // clamped to the screen
	FloorTop   float64
	Shade      color.RGBA
}

// ColumnStrip projects a hit onto a screen of height screenH. The wall is
// centred on the horizon; everything above it is ceiling and below it floor.
func ColumnStrip(hit RayHit, heading float64, screenH float64, cfg Config) Strip {
	d := FixFisheye(hit.Distance, hit.Angle, heading)
	wh := ProjectedWallHeight(d, cfg)
	if wh > screenH {
		wh = screenH
	}
	top := screenH/2 - wh/2
	return Strip{
		WallTop:    top,
		WallHeight: wh,
		FloorTop:   top + wh,
		Shade:      cfg.Palette.WallShade(hit.Vertical),
	}
}
