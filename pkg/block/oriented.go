package block

import (
	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/content"
)

// Oriented is a block bound to a corner, given by a vertical and a horizontal
// alignment. Natural operations act on the bound edges; opposite operations on
// the edges across from them.
type Oriented[C content.Content[C]] struct {
	block      Block[C]
	vertical   align.VerticalAlignment
	horizontal align.HorizontalAlignment
}

// Orient binds b to the corner (v, h).
func Orient[C content.Content[C]](b Block[C], v align.VerticalAlignment, h align.HorizontalAlignment) Oriented[C] {
	return Oriented[C]{block: b, vertical: v, horizontal: h}
}

// Orient binds b to the corner (v, h).
func (b Block[C]) Orient(v align.VerticalAlignment, h align.HorizontalAlignment) Oriented[C] {
	return Orient(b, v, h)
}

// Block returns the underlying block.
func (o Oriented[C]) Block() Block[C] { return o.block }

func (o Oriented[C]) Vertical() align.VerticalAlignment     { return o.vertical }
func (o Oriented[C]) Horizontal() align.HorizontalAlignment { return o.horizontal }

// Natural returns the bound alignment on axis.
func (o Oriented[C]) Natural(axis align.Axis) align.Alignment {
	if axis == align.TopBottom {
		return o.vertical
	}
	return o.horizontal
}

// Invert binds the block to the diagonally opposite corner.
func (o Oriented[C]) Invert() Oriented[C] {
	return Orient(o.block, o.vertical.Opposite(), o.horizontal.Opposite())
}

// Map applies f to the underlying block, keeping the orientation.
func (o Oriented[C]) Map(f func(Block[C]) Block[C]) Oriented[C] {
	return Orient(f(o.block), o.vertical, o.horizontal)
}

// PadNatural adds n columns or rows along axis on the bound edge.
func (o Oriented[C]) PadNatural(axis align.Axis, n int) Oriented[C] {
	return o.Map(func(b Block[C]) Block[C] { return b.PadAt(o.Natural(axis), n) })
}

// PadOpposite adds n columns or rows along axis on the edge opposite the bound
// one.
func (o Oriented[C]) PadOpposite(axis align.Axis, n int) Oriented[C] {
	return o.Map(func(b Block[C]) Block[C] { return b.PadAt(align.Opposite(o.Natural(axis)), n) })
}

// PadToLengthNatural grows the block along axis to length on the bound edge.
func (o Oriented[C]) PadToLengthNatural(axis align.Axis, length int) Oriented[C] {
	return o.Map(func(b Block[C]) Block[C] { return b.PadToLengthAt(o.Natural(axis), length) })
}

// PadToLengthOpposite grows the block along axis to length on the opposite edge.
func (o Oriented[C]) PadToLengthOpposite(axis align.Axis, length int) Oriented[C] {
	return o.Map(func(b Block[C]) Block[C] { return b.PadToLengthAt(align.Opposite(o.Natural(axis)), length) })
}

// JoinNatural places other after the block along axis, aligning both on the
// bound edge of the orthogonal axis.
func (o Oriented[C]) JoinNatural(axis align.Axis, other Block[C]) Oriented[C] {
	at := o.Natural(axis.Orthogonal())
	return o.Map(func(b Block[C]) Block[C] { return b.JoinAt(align.Along(axis, at), other) })
}

// JoinOpposite places other after the block along axis, aligning both on the
// edge opposite the bound one.
func (o Oriented[C]) JoinOpposite(axis align.Axis, other Block[C]) Oriented[C] {
	at := align.Opposite(o.Natural(axis.Orthogonal()))
	return o.Map(func(b Block[C]) Block[C] { return b.JoinAt(align.Along(axis, at), other) })
}
