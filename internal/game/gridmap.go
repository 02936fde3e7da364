package game

import (
	"errors"
	"fmt"
)

// defaultCellSize is the world-space edge length of one grid cell.
const defaultCellSize = 64

var (
	ErrGridEmpty          = errors.New("grid has no cells")
	ErrGridNotRectangular = errors.New("grid rows differ in length")
	ErrInvalidCellSize    = errors.New("cell size must be positive")
)

// GridMap is the static occupancy map the rays are cast against.
// A cell value of 0 is empty; any other value is a wall and identifies its type.
type GridMap struct {
	Cols     int
	Rows     int
	CellSize float64
	cells    []int // row-major: index = row*Cols + col
}

// NewGridMap copies rows into a GridMap. Every row must have the same length.
func NewGridMap(rows [][]int, cellSize float64) (*GridMap, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("new grid map: %w (got %v)", ErrInvalidCellSize, cellSize)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("new grid map: %w", ErrGridEmpty)
	}
	cols := len(rows[0])
	cells := make([]int, 0, cols*len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("new grid map: row %d has %d cells, want %d: %w",
				r, len(row), cols, ErrGridNotRectangular)
		}
		cells = append(cells, row...)
	}
	return &GridMap{Cols: cols, Rows: len(rows), CellSize: cellSize, cells: cells}, nil
}

// DefaultMap returns the 7x7 reference level: a walled room with a few pillars.
func DefaultMap() *GridMap {
	gm, err := NewGridMap([][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 1, 1, 0, 1, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1, 1, 1},
	}, defaultCellSize)
	if err != nil {
		panic(err)
	}
	return gm
}

// InBounds returns true if (col, row) is within the grid.
func (gm *GridMap) InBounds(col, row int) bool {
	return col >= 0 && col < gm.Cols && row >= 0 && row < gm.Rows
}

// CellAt returns the cell value at (col, row), or 0 if out of bounds.
func (gm *GridMap) CellAt(col, row int) int {
	if !gm.InBounds(col, row) {
		return 0
	}
	return gm.cells[row*gm.Cols+col]
}

// IsWall reports whether (col, row) holds a wall.
func (gm *GridMap) IsWall(col, row int) bool {
	return gm.CellAt(col, row) != 0
}

// WorldSize returns the grid extent in world units.
func (gm *GridMap) WorldSize() (w, h float64) {
	return float64(gm.Cols) * gm.CellSize, float64(gm.Rows) * gm.CellSize
}

// Enclosed reports whether every perimeter cell is a wall. Rays cast from
// inside an unenclosed map can leave the grid without striking anything.
func (gm *GridMap) Enclosed() bool {
	for col := 0; col < gm.Cols; col++ {
		if !gm.IsWall(col, 0) || !gm.IsWall(col, gm.Rows-1) {
			return false
		}
	}
	for row := 0; row < gm.Rows; row++ {
		if !gm.IsWall(0, row) || !gm.IsWall(gm.Cols-1, row) {
			return false
		}
	}
	return true
}

// WorldToCell converts a world position to the grid cell containing it.
func (gm *GridMap) WorldToCell(x, y float64) (col, row int) {
	return floorDiv(x, gm.CellSize), floorDiv(y, gm.CellSize)
}
