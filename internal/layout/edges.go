package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// along returns the total padding on the given axis.
func (e Edges) along(a Axis) float64 {
	if a == Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// start returns the leading edge on the given axis (Left or Top).
func (e Edges) start(a Axis) float64 {
	if a == Horizontal {
		return e.Left
	}
	return e.Top
}

// Gap is the space between adjacent columns (X) and rows (Y).
// It is a fixed cost between lines, not shareable growth.
type Gap struct {
	X, Y float64
}

// GapAll creates a Gap with the same spacing on both axes.
func GapAll(n float64) Gap {
	return Gap{X: n, Y: n}
}

// GapXY creates a Gap with separate column and row spacing.
func GapXY(x, y float64) Gap {
	return Gap{X: x, Y: y}
}

// along returns the spacing on the given axis.
func (g Gap) along(a Axis) float64 {
	if a == Horizontal {
		return g.X
	}
	return g.Y
}
