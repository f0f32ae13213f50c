package spatialmath

import "fmt"

// Axis selects one of the three principal axes of a frame.
type Axis int

// The zero Axis is not a valid axis.
const (
	AxisX Axis = iota + 1
	AxisY
	AxisZ
)

// IsValid reports whether a is one of AxisX, AxisY or AxisZ.
func (a Axis) IsValid() bool {
	return a >= AxisX && a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}
