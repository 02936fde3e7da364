package game

import (
	"fmt"
	"math"
)

// Simulation is the explicit context every frame runs against: the grid,
// the player and the tuning. Nothing is held at package scope.
type Simulation struct {
	Config  Config
	Grid    *GridMap
	Player  PlayerState
	Columns int // rays per sweep, one per screen column
	Log     *FrameLog

	rays []RayHit
	tick int
}

// Frame is an immutable snapshot of one completed tick.
type Frame struct {
	Tick   int
	Player PlayerState
	Rays   []RayHit
}

// NewSimulation validates cfg and returns a simulation sweeping columns rays.
func NewSimulation(cfg Config, gm *GridMap, p PlayerState, columns int) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if gm == nil {
		return nil, fmt.Errorf("new simulation: %w", ErrGridEmpty)
	}
	if columns <= 0 {
		return nil, fmt.Errorf("new simulation: %w: columns %d must be positive", ErrInvalidConfig, columns)
	}
	return &Simulation{
		Config:  cfg,
		Grid:    gm,
		Player:  p,
		Columns: columns,
		Log:     NewFrameLog(false, 4096),
	}, nil
}

// Tick advances the player one step and re-sweeps the field of view.
func (s *Simulation) Tick() {
	s.tick++
	s.Player.Advance()
	if s.Player.Speed != 0 {
		s.Log.Add(s.tick, "move", "advance",
			fmt.Sprintf("pos=(%.1f,%.1f)", s.Player.X, s.Player.Y), s.Player.Speed)
	}
	s.rays = NewCaster(s.Grid, s.Player).SweepField(s.Player.Heading, s.Config.FOV(), s.Columns)

	escaped := 0
	for _, r := range s.rays {
		if r.Escaped {
			escaped++
		}
	}
	if escaped > 0 {
		s.Log.Add(s.tick, "ray", "escaped", fmt.Sprintf("%d/%d rays left the grid", escaped, len(s.rays)), float64(escaped))
	}
	s.Log.AddVerbose(s.tick, "move", "pose",
		fmt.Sprintf("pos=(%.1f,%.1f) heading=%.1fdeg", s.Player.X, s.Player.Y, s.Player.Heading*180/math.Pi), s.Player.Heading)
}

// HandleInput applies a key event to the player immediately. The next Tick
// sees the result.
func (s *Simulation) HandleInput(ev InputEvent) {
	if !ApplyInput(&s.Player, ev, s.Config) {
		return
	}
	key := "key_up"
	if ev.Down {
		key = "key_down"
	}
	s.Log.Add(s.tick, "input", key, ev.Key.String(), 0)
}

// Attach registers Tick with clk at the configured period.
func (s *Simulation) Attach(clk Clock) {
	clk.OnTick(s.Config.TickPeriod, s.Tick)
}

// Rays returns the hits from the most recent Tick.
func (s *Simulation) Rays() []RayHit {
	return s.rays
}

// TickCount returns how many ticks have run.
func (s *Simulation) TickCount() int {
	return s.tick
}

// Frame returns a copy of the latest tick's output.
func (s *Simulation) Frame() Frame {
	rays := make([]RayHit, len(s.rays))
	copy(rays, s.rays)
	return Frame{Tick: s.tick, Player: s.Player, Rays: rays}
}

// Render paints the 3D view and the minimap for the latest tick.
func (s *Simulation) Render(surf Surface) {
	surf.Clear(s.Config.Palette.Background)
	RenderScene(surf, s.rays, s.Player.Heading, s.Config)
	RenderMinimap(surf, s.Grid, s.Player, s.rays, MinimapOptionsFrom(s.Config), s.Config)
}
