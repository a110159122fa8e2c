// grid.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package grid

import "github.com/grindlemire/go-grid/internal/layout"

// Axis selects one of the two independent layout dimensions.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// SizeHint declares a cell's (min, preferred, flexible) size on one axis.
type SizeHint = layout.SizeHint

// Position is a cell's (column, row) coordinate in the grid.
type Position = layout.Position

// LineMetrics is the aggregated sizing of one column or row.
type LineMetrics = layout.LineMetrics

// AxisTotals is the grid's desired extent along one axis.
type AxisTotals = layout.AxisTotals

// Allocation is the final offset and size of one column or row.
type Allocation = layout.Allocation

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Gap is the spacing between adjacent columns and rows.
type Gap = layout.Gap

// Grid lays out a flat cell sequence in a fixed number of columns.
type Grid = layout.Grid

// Cell is the interface that layout participants must implement.
type Cell = layout.Cell

// CellFuncs adapts plain functions to the Cell interface.
type CellFuncs = layout.CellFuncs

// Hint builds a SizeHint from explicit components.
func Hint(min, pref, flex float64) SizeHint {
	return layout.Hint(min, pref, flex)
}

// Exact returns a hint pinned to a single size with no flexible growth.
func Exact(size float64) SizeHint {
	return layout.Exact(size)
}

// Flexed returns a hint that contributes only flexible weight.
func Flexed(weight float64) SizeHint {
	return layout.Flexed(weight)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// GapAll creates a Gap with the same spacing on both axes.
func GapAll(n float64) Gap {
	return layout.GapAll(n)
}

// GapXY creates a Gap with separate column and row spacing.
func GapXY(x, y float64) Gap {
	return layout.GapXY(x, y)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}
