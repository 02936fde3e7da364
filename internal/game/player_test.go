package game

import (
	"math"
	"testing"
)

func TestPlayer_AdvanceZeroSpeed(t *testing.T) {
	for _, h := range []float64{0, 1, math.Pi, -2.5, 100} {
		p := NewPlayerState(10, 20, h)
		p.Advance()
		if p.X != 10 || p.Y != 20 {
			t.Fatalf("heading %v: zero speed moved player to (%v,%v)", h, p.X, p.Y)
		}
	}
}

func TestPlayer_AdvanceEast(t *testing.T) {
	p := NewPlayerState(10, 20, 0)
	p.SetSpeed(2)
	p.Advance()
	if p.X != 12 || p.Y != 20 {
		t.Fatalf("expected (12,20), got (%v,%v)", p.X, p.Y)
	}
}

func TestPlayer_AdvanceBackwardsSouth(t *testing.T) {
	p := NewPlayerState(0, 0, math.Pi/2)
	p.SetSpeed(-3)
	p.Advance()
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y+3) > 1e-9 {
		t.Fatalf("expected (0,-3), got (%v,%v)", p.X, p.Y)
	}
}

func TestPlayer_AdvanceIgnoresWalls(t *testing.T) {
	gm := DefaultMap()
	p := DefaultPlayer(gm.CellSize) // one cell west of a wall at column 2
	p.SetSpeed(gm.CellSize)
	p.Advance()
	col, row := gm.WorldToCell(p.X, p.Y)
	if !gm.IsWall(col, row) {
		t.Fatalf("player should be able to walk into wall cell, ended in (%d,%d)", col, row)
	}
}

func TestPlayer_RotateRoundTrip(t *testing.T) {
	p := NewPlayerState(0, 0, 0.3)
	step := degToRad(10)
	p.Rotate(-step)
	p.Rotate(step)
	if math.Abs(p.Heading-0.3) > 1e-12 {
		t.Fatalf("heading should return to 0.3, got %v", p.Heading)
	}
}

func TestPlayer_HeadingNotNormalised(t *testing.T) {
	p := NewPlayerState(0, 0, 0)
	for i := 0; i < 40; i++ {
		p.Rotate(degToRad(10))
	}
	if p.Heading < 2*math.Pi {
		t.Fatalf("heading should accumulate past 2pi, got %v", p.Heading)
	}
}
