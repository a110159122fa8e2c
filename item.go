package grid

// Item is a ready-made Cell for callers that do not bring their own
// layout participants. It declares one hint per axis and stores the
// bounds computed by the last layout pass.
type Item struct {
	// Width and Height are the item's size hints per axis.
	Width  SizeHint
	Height SizeHint

	// Bounds is set by the layout engine. Zero until the first pass.
	Bounds Rect
}

// NewItem creates an Item with the given per-axis hints.
func NewItem(width, height SizeHint) *Item {
	return &Item{Width: width, Height: height}
}

// SizeHint implements Cell.
func (it *Item) SizeHint(a Axis) SizeHint {
	if a == Horizontal {
		return it.Width
	}
	return it.Height
}

// SetBounds implements Cell.
func (it *Item) SetBounds(r Rect) {
	it.Bounds = r
}

// Cells converts a slice of Items to the Cell slice the engine takes.
func Cells(items ...*Item) []Cell {
	cells := make([]Cell, len(items))
	for i, it := range items {
		cells[i] = it
	}
	return cells
}
