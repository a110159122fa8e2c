package layout

// Cell is the interface for anything that can participate in grid layout.
// The engine works entirely with this interface, enabling custom implementations.
type Cell interface {
	// SizeHint reports the cell's desired sizing along the given axis.
	// It is called once per cell per axis per layout pass and must be
	// idempotent within a pass.
	SizeHint(Axis) SizeHint

	// SetBounds is called by the engine with the computed geometry.
	// Implementations must not trigger another layout pass from inside
	// the call.
	SetBounds(Rect)
}

// CellFuncs adapts plain functions to the Cell interface, for callers
// that do not want to define a type. Nil functions are treated as a
// zero hint and a discarded placement.
type CellFuncs struct {
	Hint  func(Axis) SizeHint
	Place func(Rect)
}

func (c CellFuncs) SizeHint(a Axis) SizeHint {
	if c.Hint == nil {
		return SizeHint{}
	}
	return c.Hint(a)
}

func (c CellFuncs) SetBounds(r Rect) {
	if c.Place != nil {
		c.Place(r)
	}
}
