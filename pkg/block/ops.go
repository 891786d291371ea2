package block

import (
	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/content"
)

// PadToWidthAtRight grows b to width by adding columns on the right. A smaller
// width is a no-op.
func (b Block[C]) PadToWidthAtRight(width int) Block[C] {
	if !b.materialized {
		return WithDimensions[C](max(b.empty.width, width), b.empty.height)
	}
	return fromRows(b.rows.padToWidthAtRight(width))
}

// PadToHeightAtBottom grows b to height by adding rows at the bottom.
func (b Block[C]) PadToHeightAtBottom(height int) Block[C] {
	if !b.materialized {
		return WithDimensions[C](b.empty.width, max(b.empty.height, height))
	}
	return fromRows(b.rows.padToHeightAtBottom(height))
}

// PadToWidthAtLeft grows b to width by adding columns on the left.
func (b Block[C]) PadToWidthAtLeft(width int) Block[C] {
	return b.PadAtLeft(width - b.Width())
}

// PadToHeightAtTop grows b to height by adding rows at the top.
func (b Block[C]) PadToHeightAtTop(height int) Block[C] {
	return b.PadAtTop(height - b.Height())
}

// PadAtLeft adds n columns on the left.
func (b Block[C]) PadAtLeft(n int) Block[C] {
	if n <= 0 {
		return b
	}
	if !b.materialized {
		return WithDimensions[C](b.empty.width+n, b.empty.height)
	}
	if b.rows.height() == 0 {
		return fromRows(contentBlock[C]{width: b.rows.width + n})
	}
	return spacer[C](n, b.rows.height()).joinLeftToRightAtTop(b.rows).wrap()
}

// PadAtRight adds n columns on the right.
func (b Block[C]) PadAtRight(n int) Block[C] {
	if n <= 0 {
		return b
	}
	return b.PadToWidthAtRight(b.Width() + n)
}

// PadAtTop adds n rows at the top.
func (b Block[C]) PadAtTop(n int) Block[C] {
	if n <= 0 {
		return b
	}
	if !b.materialized {
		return WithDimensions[C](b.empty.width, b.empty.height+n)
	}
	return spacer[C](b.rows.width, n).joinTopToBottomAtLeft(b.rows).wrap()
}

// PadAtBottom adds n rows at the bottom.
func (b Block[C]) PadAtBottom(n int) Block[C] {
	if n <= 0 {
		return b
	}
	return b.PadToHeightAtBottom(b.Height() + n)
}

// PadAt adds n columns or rows on the edge named by a.
func (b Block[C]) PadAt(a align.Alignment, n int) Block[C] {
	switch a {
	case align.Left:
		return b.PadAtLeft(n)
	case align.Right:
		return b.PadAtRight(n)
	case align.Top:
		return b.PadAtTop(n)
	case align.Bottom:
		return b.PadAtBottom(n)
	}
	return b
}

// PadToLengthAt grows b along a's axis to length, adding space on the edge
// named by a.
func (b Block[C]) PadToLengthAt(a align.Alignment, length int) Block[C] {
	return b.PadAt(a, length-b.Length(a.Axis()))
}

// JoinLeftToRightAtTop places other to the right of b, aligning their top edges.
func (b Block[C]) JoinLeftToRightAtTop(other Block[C]) Block[C] {
	switch {
	case !b.materialized && !other.materialized:
		return Block[C]{empty: b.empty.joinLeftToRightAtTop(other.empty)}
	case b.materialized && other.materialized:
		return b.rows.joinLeftToRightAtTop(other.rows).wrap()
	case !b.materialized:
		return joinEmptyLeftToRight(b.empty, other.rows, true)
	default:
		return joinEmptyLeftToRight(other.empty, b.rows, false)
	}
}

// JoinTopToBottomAtLeft places other below b, aligning their left edges.
func (b Block[C]) JoinTopToBottomAtLeft(other Block[C]) Block[C] {
	switch {
	case !b.materialized && !other.materialized:
		return Block[C]{empty: b.empty.joinTopToBottomAtLeft(other.empty)}
	case b.materialized && other.materialized:
		return b.rows.joinTopToBottomAtLeft(other.rows).wrap()
	case !b.materialized:
		return joinEmptyTopToBottom(b.empty, other.rows, true)
	default:
		return joinEmptyTopToBottom(other.empty, b.rows, false)
	}
}

// JoinLeftToRightAtBottom places other to the right of b, aligning their bottom
// edges.
func (b Block[C]) JoinLeftToRightAtBottom(other Block[C]) Block[C] {
	height := max(b.Height(), other.Height())
	return b.PadToHeightAtTop(height).JoinLeftToRightAtTop(other.PadToHeightAtTop(height))
}

// JoinTopToBottomAtRight places other below b, aligning their right edges.
func (b Block[C]) JoinTopToBottomAtRight(other Block[C]) Block[C] {
	width := max(b.Width(), other.Width())
	return b.PadToWidthAtLeft(width).JoinTopToBottomAtLeft(other.PadToWidthAtLeft(width))
}

// JoinAt places other after b along a.Axis, aligning both on the edge a.At.
func (b Block[C]) JoinAt(a align.AxialAlignment, other Block[C]) Block[C] {
	if a.Axis == align.TopBottom {
		if a.At == align.Right {
			return b.JoinTopToBottomAtRight(other)
		}
		return b.JoinTopToBottomAtLeft(other)
	}
	if a.At == align.Bottom {
		return b.JoinLeftToRightAtBottom(other)
	}
	return b.JoinLeftToRightAtTop(other)
}

// Overlay draws b in front of back, using the Opaque decider.
func (b Block[C]) Overlay(back Block[C]) Block[C] {
	return b.OverlayWith(back, content.Opaque)
}

// OverlayWith draws b in front of back. Both are anchored at the top left; the
// result covers their union, and decide picks the visible glyph wherever they
// overlap.
func (b Block[C]) OverlayWith(back Block[C], decide content.Decider) Block[C] {
	switch {
	case !b.materialized && !back.materialized:
		return Block[C]{empty: b.empty.union(back.empty)}
	case b.materialized && back.materialized:
		return b.rows.overlay(back.rows, decide).wrap()
	case !b.materialized:
		return overlayEmpty(b.empty, back.rows, func(filled contentBlock[C]) contentBlock[C] {
			return filled.overlay(back.rows, decide)
		})
	default:
		return overlayEmpty(back.empty, b.rows, func(filled contentBlock[C]) contentBlock[C] {
			return b.rows.overlay(filled, decide)
		})
	}
}

func (c contentBlock[C]) wrap() Block[C] { return fromRows(c) }

func spacer[C content.Content[C]](width, height int) contentBlock[C] {
	var zero C
	rows, _ := fill(emptyBlock{width: width, height: height}, zero.Space())
	return rows
}

// joinEmptyLeftToRight joins an empty block with a content block. An empty block
// of zero width leaves c unchanged.
func joinEmptyLeftToRight[C content.Content[C]](e emptyBlock, c contentBlock[C], emptyFirst bool) Block[C] {
	if e.width == 0 {
		return c.wrap()
	}
	height := max(e.height, c.height())
	if height == 0 {
		return fromRows(contentBlock[C]{width: e.width + c.width})
	}
	gap := spacer[C](e.width, height)
	if emptyFirst {
		return gap.joinLeftToRightAtTop(c).wrap()
	}
	return c.joinLeftToRightAtTop(gap).wrap()
}

// joinEmptyTopToBottom joins an empty block with a content block. An empty block
// of zero height leaves c unchanged.
func joinEmptyTopToBottom[C content.Content[C]](e emptyBlock, c contentBlock[C], emptyFirst bool) Block[C] {
	if e.height == 0 {
		return c.wrap()
	}
	width := max(e.width, c.width)
	gap := spacer[C](width, e.height)
	if emptyFirst {
		return gap.joinTopToBottomAtLeft(c).wrap()
	}
	return c.joinTopToBottomAtLeft(gap).wrap()
}

// overlayEmpty combines an empty block with a content block. An empty block of
// zero area only pads c to the union; otherwise it is filled with spaces and
// handed to draw.
func overlayEmpty[C content.Content[C]](e emptyBlock, c contentBlock[C], draw func(contentBlock[C]) contentBlock[C]) Block[C] {
	size := e.union(c.dimensions())
	if e.width == 0 || e.height == 0 {
		return c.padToWidthAtRight(size.width).padToHeightAtBottom(size.height).wrap()
	}
	return draw(spacer[C](e.width, e.height)).wrap()
}
