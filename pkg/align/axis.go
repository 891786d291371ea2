package align

import (
	"fmt"
	"strings"
)

// Axis is one of the two perpendicular directions of extent.
type Axis uint8

const (
	LeftRight Axis = iota // horizontal extent (width)
	TopBottom             // vertical extent (height)
)

// Axes lists both axes in ordinal order.
var Axes = [...]Axis{LeftRight, TopBottom}

// Orthogonal returns the other axis.
func (a Axis) Orthogonal() Axis {
	if a == LeftRight {
		return TopBottom
	}
	return LeftRight
}

// Origin returns the alignment at which the axis starts: Left for LeftRight and
// Top for TopBottom.
func (a Axis) Origin() Alignment {
	if a == LeftRight {
		return Left
	}
	return Top
}

// End returns the alignment at which the axis ends.
func (a Axis) End() Alignment {
	return Opposite(a.Origin())
}

func (a Axis) String() string {
	switch a {
	case LeftRight:
		return "left-right"
	case TopBottom:
		return "top-bottom"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis accepts the String form of an axis as well as the short aliases
// "horizontal"/"h" and "vertical"/"v".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left-right", "leftright", "horizontal", "h", "x":
		return LeftRight, nil
	case "top-bottom", "topbottom", "vertical", "v", "y":
		return TopBottom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}
