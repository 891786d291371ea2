package primitive

import (
	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/block"
	"github.com/aretw0/tessera/pkg/content"
)

// Rule draws a straight line of length cells along axis with the stroke's
// palette for that axis.
func Rule[C content.Content[C]](axis align.Axis, length int, stroke Stroke) block.Block[C] {
	return Line[C](axis, length, stroke)
}

// Frame surrounds b with a border drawn in stroke.
func Frame[C content.Content[C]](b block.Block[C], stroke Stroke) block.Block[C] {
	return frame(b, stroke, "")
}

// Card is Frame with title centered in the top border. Titles that do not fit
// are truncated, and dropped when b is narrower than three columns.
func Card[C content.Content[C]](b block.Block[C], title string, stroke Stroke) block.Block[C] {
	return frame(b, stroke, title)
}

func frame[C content.Content[C]](b block.Block[C], stroke Stroke, title string) block.Block[C] {
	width, height := b.Width(), b.Height()
	var zero C
	corner := func(v align.VerticalAlignment, h align.HorizontalAlignment) block.Block[C] {
		return block.WithContent(zero.Grapheme(stroke.Corner(v, h)))
	}
	edge := func(length int) block.Block[C] {
		return Rule[C](align.LeftRight, length, stroke)
	}

	top := corner(align.Top, align.Left).
		JoinLeftToRightAtTop(labeled(width, 0, title, edge)).
		JoinLeftToRightAtTop(corner(align.Top, align.Right))
	bottom := corner(align.Bottom, align.Left).
		JoinLeftToRightAtTop(edge(width)).
		JoinLeftToRightAtTop(corner(align.Bottom, align.Right))

	side := Rule[C](align.TopBottom, height, stroke)
	middle := side.JoinLeftToRightAtTop(b).JoinLeftToRightAtTop(side)

	return top.JoinTopToBottomAtLeft(middle).JoinTopToBottomAtLeft(bottom)
}

// Divider draws a horizontal rule of length cells with label centered in it,
// keeping at least one rule cell on each side.
func Divider[C content.Content[C]](length int, label string, stroke Stroke) block.Block[C] {
	return labeled(length, 1, label, func(n int) block.Block[C] {
		return Rule[C](align.LeftRight, n, stroke)
	})
}

// labeled draws edge(length) with " label " centered over it, leaving margin
// edge cells on both sides. The label is truncated to fit and dropped when not
// even one cell of it would.
func labeled[C content.Content[C]](length, margin int, label string, edge func(int) block.Block[C]) block.Block[C] {
	room := length - 2*margin - 2
	if label == "" || room < 1 {
		return edge(length)
	}
	var zero C
	text := zero.Space().Concat(zero.FromString(label).Truncate(room)).Concat(zero.Space())
	left := (length - text.Width()) / 2
	right := length - left - text.Width()
	return edge(left).
		JoinLeftToRightAtTop(block.WithContent(text)).
		JoinLeftToRightAtTop(edge(right))
}

// Inset pads each edge of b by the amount given for it.
func Inset[C content.Content[C]](b block.Block[C], margins align.Perimeter[int]) block.Block[C] {
	for _, a := range align.Alignments {
		b = b.PadAt(a, margins.At(a))
	}
	return b
}
