package layout

// LineMetrics aggregates the size hints of every cell sharing one
// column or row. Each field is the element-wise maximum across those
// cells; Min <= Pref holds by construction.
type LineMetrics struct {
	Min, Pref, Flex float64
}

// AxisTotals is the padding- and gap-inclusive sum of an axis's line
// metrics. It is what the grid reports upward as its desired extent,
// and the allocator's basis for proportional shares. Gap and padding
// are fixed costs, so they are added to Min and Pref but never to Flex.
type AxisTotals struct {
	Min, Pref, Flex float64
}

// measureAxis aggregates per-cell hints into one LineMetrics per column
// (Horizontal) or row (Vertical) and derives the axis totals.
//
// pad is the combined padding on both ends of the axis. A grid with no
// cells still reserves its padding.
func measureAxis(cells []Cell, axis Axis, columns int, gap, pad float64) ([]LineMetrics, AxisTotals) {
	if len(cells) == 0 {
		return nil, AxisTotals{Min: pad, Pref: pad}
	}

	count := columns
	if axis == Vertical {
		count = RowCount(len(cells), columns)
	}

	lines := make([]LineMetrics, count)
	for i, cell := range cells {
		pos := PositionFor(i, columns)
		idx := pos.Col
		if axis == Vertical {
			idx = pos.Row
		}

		h := cell.SizeHint(axis).normalized()
		line := &lines[idx]
		if h.Min > line.Min {
			line.Min = h.Min
		}
		// Widen Pref by the updated Min so a minimum-only cell still
		// raises the line's preferred floor.
		if line.Pref < line.Min {
			line.Pref = line.Min
		}
		if h.Pref > line.Pref {
			line.Pref = h.Pref
		}
		if h.Flex > line.Flex {
			line.Flex = h.Flex
		}
	}

	var totals AxisTotals
	for _, l := range lines {
		totals.Min += l.Min
		totals.Pref += l.Pref
		totals.Flex += l.Flex
	}
	fixed := float64(count-1)*gap + pad
	totals.Min += fixed
	totals.Pref += fixed
	return lines, totals
}
