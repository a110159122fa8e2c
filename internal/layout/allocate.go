package layout

// Allocation is the final offset and size of one column or row after a
// layout pass. Transient: recomputed every pass, never persisted.
type Allocation struct {
	Offset, Size float64
}

// distribute computes one Allocation per line from the measured metrics
// and the space available along the axis.
//
// Three ordered passes: every line is granted its Min; space toward
// preferred sizes is distributed proportionally to each line's
// (Pref - Min), capped at what is both available and wanted; any
// remainder is distributed proportionally to Flex weight. Lines that
// declare no flexible weight never receive leftover space.
//
// When available < totals.Min the result overflows rather than clamps;
// detecting overflow is the caller's concern.
func distribute(lines []LineMetrics, totals AxisTotals, available, gap, start float64) []Allocation {
	if len(lines) == 0 {
		return nil
	}

	remaining := available - totals.Min
	if remaining < 0 {
		remaining = 0
	}
	idealGrowth := totals.Pref - totals.Min

	reserved := idealGrowth
	if remaining < reserved {
		reserved = remaining
	}
	leftover := remaining - reserved

	allocs := make([]Allocation, len(lines))
	offset := start
	for i, l := range lines {
		size := l.Min
		if reserved > 0 {
			size += reserved * (l.Pref - l.Min) / idealGrowth
		}
		if leftover > 0 && totals.Flex > 0 {
			size += leftover / totals.Flex * l.Flex
		}
		allocs[i] = Allocation{Offset: offset, Size: size}
		offset += size + gap
	}
	return allocs
}
