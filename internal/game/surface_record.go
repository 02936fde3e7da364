package game

import "image/color"

// DrawOp is one primitive captured by a RecordSurface.
type DrawOp struct {
	Kind           string // "clear", "rect" or "line"
	X0, Y0, X1, Y1 float64
	Color          color.Color
}

// RecordSurface is a headless Surface that stores every call. The headless
// report and tests render through it.
type RecordSurface struct {
	W, H int
	Ops  []DrawOp
}

// NewRecordSurface creates an empty recording surface of the given size.
func NewRecordSurface(w, h int) *RecordSurface {
	return &RecordSurface{W: w, H: h}
}

func (r *RecordSurface) Size() (int, int) { return r.W, r.H }

// Clear drops everything recorded so far and records the clear itself.
func (r *RecordSurface) Clear(c color.Color) {
	r.Ops = append(r.Ops[:0], DrawOp{Kind: "clear", X1: float64(r.W), Y1: float64(r.H), Color: c})
}

// FillRect records a rectangle as its corners (X0,Y0)-(X1,Y1).
func (r *RecordSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "rect", X0: x, Y0: y, X1: x + w, Y1: y + h, Color: c})
}

func (r *RecordSurface) DrawLine(x0, y0, x1, y1 float64, c color.Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "line", X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

// Count returns how many recorded ops have the given kind and colour.
// A nil colour matches any.
func (r *RecordSurface) Count(kind string, c color.Color) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind != kind {
			continue
		}
		if c != nil && !sameColor(op.Color, c) {
			continue
		}
		n++
	}
	return n
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
