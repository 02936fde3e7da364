package game

import (
	"errors"
	"testing"
)

func TestNewGridMap_Dimensions(t *testing.T) {
	gm, err := NewGridMap([][]int{{1, 1, 1}, {1, 0, 1}}, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gm.Cols != 3 || gm.Rows != 2 {
		t.Fatalf("expected 3x2, got %dx%d", gm.Cols, gm.Rows)
	}
	if w, h := gm.WorldSize(); w != 96 || h != 64 {
		t.Fatalf("expected world 96x64, got %.0fx%.0f", w, h)
	}
}

func TestNewGridMap_RaggedRowsRejected(t *testing.T) {
	_, err := NewGridMap([][]int{{1, 1, 1}, {1, 0}}, 64)
	if !errors.Is(err, ErrGridNotRectangular) {
		t.Fatalf("expected ErrGridNotRectangular, got %v", err)
	}
}

func TestNewGridMap_EmptyRejected(t *testing.T) {
	if _, err := NewGridMap(nil, 64); !errors.Is(err, ErrGridEmpty) {
		t.Fatalf("nil rows: expected ErrGridEmpty, got %v", err)
	}
	if _, err := NewGridMap([][]int{{}}, 64); !errors.Is(err, ErrGridEmpty) {
		t.Fatalf("empty row: expected ErrGridEmpty, got %v", err)
	}
}

func TestNewGridMap_BadCellSize(t *testing.T) {
	if _, err := NewGridMap([][]int{{1}}, 0); !errors.Is(err, ErrInvalidCellSize) {
		t.Fatalf("expected ErrInvalidCellSize, got %v", err)
	}
}

func TestNewGridMap_CopiesInput(t *testing.T) {
	rows := [][]int{{0, 1}, {1, 0}}
	gm, err := NewGridMap(rows, 64)
	if err != nil {
		t.Fatal(err)
	}
	rows[0][0] = 7
	if gm.CellAt(0, 0) != 0 {
		t.Fatal("grid should not alias the caller's rows")
	}
}

func TestGridMap_CellAtAndBounds(t *testing.T) {
	gm := DefaultMap()
	if gm.CellAt(2, 2) != 1 {
		t.Fatalf("cell (2,2) should be a wall, got %d", gm.CellAt(2, 2))
	}
	if gm.CellAt(1, 1) != 0 {
		t.Fatalf("cell (1,1) should be empty, got %d", gm.CellAt(1, 1))
	}
	cases := [][2]int{{-1, 0}, {0, -1}, {7, 0}, {0, 7}, {99, 99}}
	for _, c := range cases {
		if gm.InBounds(c[0], c[1]) {
			t.Fatalf("(%d,%d) should be out of bounds", c[0], c[1])
		}
		if v := gm.CellAt(c[0], c[1]); v != 0 {
			t.Fatalf("out of bounds CellAt(%d,%d) = %d, want 0", c[0], c[1], v)
		}
	}
	if !gm.InBounds(0, 0) || !gm.InBounds(6, 6) {
		t.Fatal("corners should be in bounds")
	}
}

func TestGridMap_WallTypePreserved(t *testing.T) {
	gm, err := NewGridMap([][]int{{3, 0}}, 64)
	if err != nil {
		t.Fatal(err)
	}
	if gm.CellAt(0, 0) != 3 || !gm.IsWall(0, 0) || gm.IsWall(1, 0) {
		t.Fatal("wall type id should be kept and only nonzero cells are walls")
	}
}

func TestGridMap_Enclosed(t *testing.T) {
	if !DefaultMap().Enclosed() {
		t.Fatal("default map should be fully enclosed")
	}
	gm, err := NewGridMap([][]int{
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 1},
	}, 64)
	if err != nil {
		t.Fatal(err)
	}
	if gm.Enclosed() {
		t.Fatal("map with an open east edge should not be enclosed")
	}
}

func TestGridMap_WorldToCell(t *testing.T) {
	gm := DefaultMap()
	col, row := gm.WorldToCell(96, 128)
	if col != 1 || row != 2 {
		t.Fatalf("expected cell (1,2), got (%d,%d)", col, row)
	}
	col, row = gm.WorldToCell(-1, -1)
	if col != -1 || row != -1 {
		t.Fatalf("negative coordinates should floor to -1, got (%d,%d)", col, row)
	}
}
