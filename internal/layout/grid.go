package layout

import "github.com/grindlemire/go-grid/internal/debug"

// Grid lays out a flat, ordered sequence of cells in a fixed number of
// columns, filling row-major. Rows are derived from the cell count.
//
// Grid is configuration only: it is read at the start of each pass and
// never mutated by the engine. The zero value is a single-column grid
// with no gap or padding. A pass assumes a single-owner model; mutating
// the configuration from another goroutine mid-pass is not safe.
type Grid struct {
	// Columns is the number of columns. Values below 1 are treated as 1.
	Columns int

	// Gap is the spacing between adjacent columns and rows.
	Gap Gap

	// Padding is the space reserved around the whole grid, inside the
	// available extent.
	Padding Edges
}

// columns returns the configured column count clamped to at least 1.
func (g Grid) columns() int {
	if g.Columns < 1 {
		return 1
	}
	return g.Columns
}

// Rows returns the number of rows the grid needs for n cells.
func (g Grid) Rows(n int) int {
	return RowCount(n, g.columns())
}

// PositionOf returns the (column, row) coordinate of the i-th cell.
func (g Grid) PositionOf(i int) Position {
	return PositionFor(i, g.columns())
}

// Measure aggregates the cells' size hints into per-line metrics and
// axis totals for one axis. The totals are gap- and padding-inclusive.
func (g Grid) Measure(cells []Cell, axis Axis) ([]LineMetrics, AxisTotals) {
	return measureAxis(cells, axis, g.columns(), g.Gap.along(axis), g.Padding.along(axis))
}

// Totals reports the grid's desired extent along one axis, for a
// container that needs to request space from its own parent before
// calling Layout.
func (g Grid) Totals(cells []Cell, axis Axis) AxisTotals {
	_, totals := g.Measure(cells, axis)
	return totals
}

// Allocate measures one axis and distributes the available space over
// its lines. The returned offsets start at the axis's leading padding.
func (g Grid) Allocate(cells []Cell, axis Axis, available float64) []Allocation {
	lines, totals := g.Measure(cells, axis)
	return distribute(lines, totals, available, g.Gap.along(axis), g.Padding.start(axis))
}

// Layout computes and applies the geometry of every cell within the
// given available width and height. The horizontal axis is fully sized
// and allocated before the vertical axis; each cell then receives one
// SetBounds call combining its column's and row's allocation.
//
// A grid with no cells issues no placement calls. The pass is pure and
// synchronous: no I/O, nothing to cancel.
func (g Grid) Layout(cells []Cell, width, height float64) {
	if len(cells) == 0 {
		return
	}
	columns := g.columns()

	cols, colTotals := measureAxis(cells, Horizontal, columns, g.Gap.X, g.Padding.Horizontal())
	colAllocs := distribute(cols, colTotals, width, g.Gap.X, g.Padding.Left)

	rows, rowTotals := measureAxis(cells, Vertical, columns, g.Gap.Y, g.Padding.Vertical())
	rowAllocs := distribute(rows, rowTotals, height, g.Gap.Y, g.Padding.Top)

	debug.Logf("layout: %d cells, %d cols x %d rows, avail %.1fx%.1f, totals h=%+v v=%+v",
		len(cells), columns, len(rows), width, height, colTotals, rowTotals)

	for i, cell := range cells {
		pos := PositionFor(i, columns)
		col := colAllocs[pos.Col]
		row := rowAllocs[pos.Row]
		cell.SetBounds(Rect{X: col.Offset, Y: row.Offset, Width: col.Size, Height: row.Size})
	}
}
