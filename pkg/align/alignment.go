package align

import (
	"fmt"
	"strings"
)

// Alignment is one of the four edges of a rectangle. The set of implementations is
// closed: HorizontalAlignment and VerticalAlignment.
type Alignment interface {
	// Axis returns the axis the edge lies on.
	Axis() Axis
	// Ordinal is stable across releases: Left=0, Right=1, Top=2, Bottom=3.
	Ordinal() int
	String() string

	alignment()
}

// HorizontalAlignment is an edge on the LeftRight axis.
type HorizontalAlignment uint8

const (
	Left HorizontalAlignment = iota
	Right
)

// VerticalAlignment is an edge on the TopBottom axis.
type VerticalAlignment uint8

const (
	Top VerticalAlignment = iota
	Bottom
)

// Alignments lists all four edges in ordinal order.
var Alignments = [...]Alignment{Left, Right, Top, Bottom}

func (HorizontalAlignment) alignment() {}
func (VerticalAlignment) alignment()   {}

func (HorizontalAlignment) Axis() Axis { return LeftRight }
func (VerticalAlignment) Axis() Axis   { return TopBottom }

func (h HorizontalAlignment) Ordinal() int { return int(h) }
func (v VerticalAlignment) Ordinal() int   { return 2 + int(v) }

// Opposite returns the other edge on the same axis.
func (h HorizontalAlignment) Opposite() HorizontalAlignment {
	if h == Left {
		return Right
	}
	return Left
}

// Opposite returns the other edge on the same axis.
func (v VerticalAlignment) Opposite() VerticalAlignment {
	if v == Top {
		return Bottom
	}
	return Top
}

func (h HorizontalAlignment) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("HorizontalAlignment(%d)", uint8(h))
	}
}

func (v VerticalAlignment) String() string {
	switch v {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("VerticalAlignment(%d)", uint8(v))
	}
}

// Opposite returns the other edge on the axis of a.
func Opposite(a Alignment) Alignment {
	switch a := a.(type) {
	case HorizontalAlignment:
		return a.Opposite()
	case VerticalAlignment:
		return a.Opposite()
	}
	panic(fmt.Sprintf("align: unknown alignment %v", a))
}

// IsOrigin reports whether a is the origin of its axis (Left or Top).
func IsOrigin(a Alignment) bool {
	return a == a.Axis().Origin()
}

// ParseAlignment accepts "left", "right", "top" or "bottom" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// AxialAlignment addresses a join: the axis along which two blocks are
// concatenated and the edge of the orthogonal axis they are flush with.
type AxialAlignment struct {
	Axis Axis
	// At lies on Axis.Orthogonal().
	At Alignment
}

var (
	LeftRightAtTop    = AxialAlignment{Axis: LeftRight, At: Top}
	LeftRightAtBottom = AxialAlignment{Axis: LeftRight, At: Bottom}
	TopBottomAtLeft   = AxialAlignment{Axis: TopBottom, At: Left}
	TopBottomAtRight  = AxialAlignment{Axis: TopBottom, At: Right}
)

// Along returns the join address for axis flush with the given orthogonal edge.
// It panics when at does not lie on the orthogonal axis.
func Along(axis Axis, at Alignment) AxialAlignment {
	if at.Axis() != axis.Orthogonal() {
		panic(fmt.Sprintf("align: %v does not lie across %v", at, axis))
	}
	return AxialAlignment{Axis: axis, At: at}
}

func (a AxialAlignment) String() string {
	return a.Axis.String() + "@" + a.At.String()
}
