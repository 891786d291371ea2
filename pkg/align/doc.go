/*
Package align classifies the two layout axes and the four edges of a rectangle.

Every directional operation in tessera is parameterized by values from this
package, so that generic code can ask "which side is mine?" and "which side is
the other one?" without branching on the direction at the call site.

# Axes and Alignments

There are exactly two axes, LeftRight and TopBottom, and four alignments. Left and
Right are HorizontalAlignment values on the LeftRight axis; Top and Bottom are
VerticalAlignment values on the TopBottom axis. The Alignment interface is closed:
only those two types implement it, so a function that accepts a
HorizontalAlignment cannot be handed a vertical edge.

	align.Left.Axis()          // LeftRight
	align.Left.Opposite()      // Right
	align.LeftRight.Origin()   // Left
	align.TopBottom.Orthogonal() // LeftRight

# Aggregates

Horizontal, Vertical, Axial, Quadrant and Perimeter hold one item per side, axis or
corner. The alignment values select fields out of them:

	corners := align.Quadrant[string]{
		Top:    align.Horizontal[string]{Left: "┌", Right: "┐"},
		Bottom: align.Horizontal[string]{Left: "└", Right: "┘"},
	}
	corners.At(align.Bottom, align.Right) // "┘"
*/
package align
