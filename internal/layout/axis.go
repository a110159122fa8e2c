package layout

// Axis selects one of the two independent layout dimensions.
type Axis uint8

const (
	Horizontal Axis = iota // Columns are sized along this axis
	Vertical               // Rows are sized along this axis
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
