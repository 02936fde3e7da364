package game

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables shared by the simulation and the renderers.
type Config struct {
	CellSize   float64       // world units per grid cell
	FOVDeg     float64       // horizontal field of view in degrees
	TickPeriod time.Duration // nominal simulation step
	WalkSpeed  float64       // world units per tick while a move key is held
	TurnDeg    float64       // heading change per turn key press

	// Wall projection: height = CellSize*WallHeight/distance*ProjScale.
	WallHeight float64
	ProjScale  float64

	MinimapScale float64
	MinimapX     float64
	MinimapY     float64
	PlayerSize   float64 // minimap player marker edge, screen pixels

	Palette Palette
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		CellSize:     defaultCellSize,
		FOVDeg:       60,
		TickPeriod:   30 * time.Millisecond,
		WalkSpeed:    2,
		TurnDeg:      10,
		WallHeight:   5,
		ProjScale:    277,
		MinimapScale: 0.75,
		PlayerSize:   10,
		Palette:      DefaultPalette(),
	}
}

// Validate reports the first tunable that would make rendering meaningless.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v must be positive", ErrInvalidConfig, c.CellSize)
	case c.FOVDeg <= 0 || c.FOVDeg >= 180:
		return fmt.Errorf("%w: fov %v must be in (0, 180) degrees", ErrInvalidConfig, c.FOVDeg)
	case c.TickPeriod <= 0:
		return fmt.Errorf("%w: tick period %v must be positive", ErrInvalidConfig, c.TickPeriod)
	case c.WallHeight <= 0 || c.ProjScale <= 0:
		return fmt.Errorf("%w: wall height %v and projection scale %v must be positive",
			ErrInvalidConfig, c.WallHeight, c.ProjScale)
	case c.MinimapScale < 0:
		return fmt.Errorf("%w: minimap scale %v must not be negative", ErrInvalidConfig, c.MinimapScale)
	}
	return nil
}

// FOV returns the field of view in radians.
func (c Config) FOV() float64 {
	return degToRad(c.FOVDeg)
}

// TurnStep returns the per-press heading delta in radians.
func (c Config) TurnStep() float64 {
	return degToRad(c.TurnDeg)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
