package layout

// SizeHint declares how much space a cell wants along one axis.
//
// Malformed hints are repaired rather than rejected: negative components
// are clamped to zero and Pref is widened to at least Min before the
// engine uses the hint.
type SizeHint struct {
	// Min is the hard lower bound. A line is never sized below the
	// largest Min of its cells.
	Min float64

	// Pref is the size the cell would like once every line's minimum
	// has been met.
	Pref float64

	// Flex is the relative weight for absorbing space left over after
	// preferred sizes are satisfied. Zero means the cell never grows
	// past its preferred size.
	Flex float64
}

// Hint builds a SizeHint from explicit components.
func Hint(min, pref, flex float64) SizeHint {
	return SizeHint{Min: min, Pref: pref, Flex: flex}
}

// Exact returns a hint pinned to a single size with no flexible growth.
func Exact(size float64) SizeHint {
	return SizeHint{Min: size, Pref: size}
}

// Flexed returns a hint that contributes only flexible weight.
func Flexed(weight float64) SizeHint {
	return SizeHint{Flex: weight}
}

// normalized returns the hint with negative components clamped to zero
// and Pref widened to at least Min.
func (h SizeHint) normalized() SizeHint {
	if h.Min < 0 {
		h.Min = 0
	}
	if h.Pref < h.Min {
		h.Pref = h.Min
	}
	if h.Flex < 0 {
		h.Flex = 0
	}
	return h
}
