package game

import "math"

// PlayerState is the viewer's pose. Heading is in radians, 0 = +x (east),
// pi/2 = +y (down the screen). It is never normalised.
type PlayerState struct {
	X       float64
	Y       float64
	Heading float64
	Speed   float64 // world units per tick along Heading
}

// NewPlayerState places a stationary player at (x, y).
func NewPlayerState(x, y, heading float64) PlayerState {
	return PlayerState{X: x, Y: y, Heading: heading}
}

// DefaultPlayer returns the start pose for DefaultMap: centre of column 1,
// on the boundary between rows 1 and 2, facing east.
func DefaultPlayer(cellSize float64) PlayerState {
	return NewPlayerState(cellSize*1.5, cellSize*2, 0)
}

// Advance moves the player one tick along its heading. Walls are not
// consulted; the player can walk through them.
func (p *PlayerState) Advance() {
	p.X += math.Cos(p.Heading) * p.Speed
	p.Y += math.Sin(p.Heading) * p.Speed
}

// SetSpeed sets the forward speed. Negative values walk backwards.
func (p *PlayerState) SetSpeed(v float64) {
	p.Speed = v
}

// Rotate adds delta radians to the heading.
func (p *PlayerState) Rotate(delta float64) {
	p.Heading += delta
}
