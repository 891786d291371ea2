package align

// HorizontallyAligned is any aggregate with one item per horizontal edge.
type HorizontallyAligned[T any] interface {
	LeftItem() T
	RightItem() T
}

// VerticallyAligned is any aggregate with one item per vertical edge.
type VerticallyAligned[T any] interface {
	TopItem() T
	BottomItem() T
}

// AxiallyAligned is any aggregate with one item per axis.
type AxiallyAligned[T any] interface {
	HorizontalItem() T
	VerticalItem() T
}

// Horizontally selects the item of data positioned at h.
func Horizontally[T any](data HorizontallyAligned[T], h HorizontalAlignment) T {
	if h == Right {
		return data.RightItem()
	}
	return data.LeftItem()
}

// Vertically selects the item of data positioned at v.
func Vertically[T any](data VerticallyAligned[T], v VerticalAlignment) T {
	if v == Bottom {
		return data.BottomItem()
	}
	return data.TopItem()
}

// Axially selects the item of data for axis.
func Axially[T any](data AxiallyAligned[T], axis Axis) T {
	if axis == TopBottom {
		return data.VerticalItem()
	}
	return data.HorizontalItem()
}

// FoldHorizontally calls f with the item at h and the item at its opposite.
func FoldHorizontally[T, U any](data HorizontallyAligned[T], h HorizontalAlignment, f func(near, far T) U) U {
	return f(Horizontally(data, h), Horizontally(data, h.Opposite()))
}

// FoldVertically calls f with the item at v and the item at its opposite.
func FoldVertically[T, U any](data VerticallyAligned[T], v VerticalAlignment, f func(near, far T) U) U {
	return f(Vertically(data, v), Vertically(data, v.Opposite()))
}

// Horizontal holds one item per horizontal edge.
type Horizontal[T any] struct {
	Left  T
	Right T
}

func (h Horizontal[T]) LeftItem() T  { return h.Left }
func (h Horizontal[T]) RightItem() T { return h.Right }

// At returns the item positioned at alignment.
func (h Horizontal[T]) At(alignment HorizontalAlignment) T {
	return Horizontally[T](h, alignment)
}

// Invert swaps the left and right items.
func (h Horizontal[T]) Invert() Horizontal[T] {
	return Horizontal[T]{Left: h.Right, Right: h.Left}
}

// Vertical holds one item per vertical edge.
type Vertical[T any] struct {
	Top    T
	Bottom T
}

func (v Vertical[T]) TopItem() T    { return v.Top }
func (v Vertical[T]) BottomItem() T { return v.Bottom }

// At returns the item positioned at alignment.
func (v Vertical[T]) At(alignment VerticalAlignment) T {
	return Vertically[T](v, alignment)
}

// Invert swaps the top and bottom items.
func (v Vertical[T]) Invert() Vertical[T] {
	return Vertical[T]{Top: v.Bottom, Bottom: v.Top}
}

// TransposeHorizontal turns left/right columns of top/bottom items into
// top/bottom rows of left/right items.
func TransposeHorizontal[T any](h Horizontal[Vertical[T]]) Vertical[Horizontal[T]] {
	return Vertical[Horizontal[T]]{
		Top:    Horizontal[T]{Left: h.Left.Top, Right: h.Right.Top},
		Bottom: Horizontal[T]{Left: h.Left.Bottom, Right: h.Right.Bottom},
	}
}

// TransposeVertical is the inverse of TransposeHorizontal.
func TransposeVertical[T any](v Vertical[Horizontal[T]]) Horizontal[Vertical[T]] {
	return Horizontal[Vertical[T]]{
		Left:  Vertical[T]{Top: v.Top.Left, Bottom: v.Bottom.Left},
		Right: Vertical[T]{Top: v.Top.Right, Bottom: v.Bottom.Right},
	}
}

// Axial holds one item per axis, e.g. a palette for horizontal rules and another
// for vertical rules.
type Axial[T any] struct {
	Horizontal T
	Vertical   T
}

func (a Axial[T]) HorizontalItem() T { return a.Horizontal }
func (a Axial[T]) VerticalItem() T   { return a.Vertical }

// At returns the item for axis.
func (a Axial[T]) At(axis Axis) T {
	return Axially[T](a, axis)
}

// Invert swaps the horizontal and vertical items.
func (a Axial[T]) Invert() Axial[T] {
	return Axial[T]{Horizontal: a.Vertical, Vertical: a.Horizontal}
}

// Uniform returns an Axial holding item on both axes.
func Uniform[T any](item T) Axial[T] {
	return Axial[T]{Horizontal: item, Vertical: item}
}

// Quadrant holds one item per corner of a rectangle.
type Quadrant[T any] struct {
	Top    Horizontal[T]
	Bottom Horizontal[T]
}

func (q Quadrant[T]) TopItem() Horizontal[T]    { return q.Top }
func (q Quadrant[T]) BottomItem() Horizontal[T] { return q.Bottom }

// At returns the item in the corner addressed by (vertical, horizontal).
func (q Quadrant[T]) At(vertical VerticalAlignment, horizontal HorizontalAlignment) T {
	return Vertically[Horizontal[T]](q, vertical).At(horizontal)
}

// QuadrantOf builds a Quadrant from left/right columns.
func QuadrantOf[T any](columns Horizontal[Vertical[T]]) Quadrant[T] {
	rows := TransposeHorizontal(columns)
	return Quadrant[T]{Top: rows.Top, Bottom: rows.Bottom}
}

// Rotate turns the corners a quarter turn toward alignment. Top is the identity,
// Left turns counterclockwise, Right clockwise and Bottom half a turn.
func (q Quadrant[T]) Rotate(alignment Alignment) Quadrant[T] {
	switch alignment {
	case Left:
		return Quadrant[T]{
			Top:    Horizontal[T]{Left: q.Top.Right, Right: q.Bottom.Right},
			Bottom: Horizontal[T]{Left: q.Top.Left, Right: q.Bottom.Left},
		}
	case Right:
		return Quadrant[T]{
			Top:    Horizontal[T]{Left: q.Bottom.Left, Right: q.Top.Left},
			Bottom: Horizontal[T]{Left: q.Bottom.Right, Right: q.Top.Right},
		}
	case Bottom:
		return Quadrant[T]{Top: q.Bottom.Invert(), Bottom: q.Top.Invert()}
	}
	return q
}

// Perimeter holds one item per edge.
type Perimeter[T any] struct {
	Left   T
	Right  T
	Top    T
	Bottom T
}

func (p Perimeter[T]) LeftItem() T   { return p.Left }
func (p Perimeter[T]) RightItem() T  { return p.Right }
func (p Perimeter[T]) TopItem() T    { return p.Top }
func (p Perimeter[T]) BottomItem() T { return p.Bottom }

// At returns the item on edge alignment.
func (p Perimeter[T]) At(alignment Alignment) T {
	switch a := alignment.(type) {
	case HorizontalAlignment:
		return Horizontally[T](p, a)
	case VerticalAlignment:
		return Vertically[T](p, a)
	}
	var zero T
	return zero
}

// Rotate turns the edges a quarter turn toward alignment, with the same
// convention as Quadrant.Rotate.
func (p Perimeter[T]) Rotate(alignment Alignment) Perimeter[T] {
	switch alignment {
	case Left:
		return Perimeter[T]{Left: p.Top, Right: p.Bottom, Top: p.Right, Bottom: p.Left}
	case Right:
		return Perimeter[T]{Left: p.Bottom, Right: p.Top, Top: p.Left, Bottom: p.Right}
	case Bottom:
		return Perimeter[T]{Left: p.Right, Right: p.Left, Top: p.Bottom, Bottom: p.Top}
	}
	return p
}

// Edges returns a Perimeter with every edge set to item.
func Edges[T any](item T) Perimeter[T] {
	return Perimeter[T]{Left: item, Right: item, Top: item, Bottom: item}
}
