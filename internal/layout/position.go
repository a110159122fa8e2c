package layout

// Position is a cell's (column, row) coordinate in the grid.
type Position struct {
	Col, Row int
}

// PositionFor maps the i-th cell of a row-major grid with the given
// column count to its coordinate. columns must be at least 1; Grid
// clamps its configuration before calling.
func PositionFor(i, columns int) Position {
	return Position{Col: i % columns, Row: i / columns}
}

// RowCount returns the number of rows needed to hold n cells in the
// given number of columns.
func RowCount(n, columns int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/columns + 1
}
