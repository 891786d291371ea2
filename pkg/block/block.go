package block

import (
	"io"
	"strings"
	"unicode"

	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/content"
)

// Block is a rectangle of content. The zero value is an empty 0x0 block.
//
// Blocks are immutable values: every operation returns a new block and leaves
// its operands untouched, so they are safe to share between goroutines.
type Block[C content.Content[C]] struct {
	materialized bool
	empty        emptyBlock
	rows         contentBlock[C]
}

// Plain is a block of unstyled text.
type Plain = Block[content.Text]

// Text returns a block holding s, one row per line.
func Text(s string) Plain {
	return WithContent(content.Text(s))
}

// Of returns a block of C holding s with the default style.
func Of[C content.Content[C]](s string) Block[C] {
	var zero C
	return WithContent(zero.FromString(s))
}

// WithDimensions returns an empty block of the given size. Negative sizes are
// clamped to zero.
func WithDimensions[C content.Content[C]](width, height int) Block[C] {
	return Block[C]{empty: emptyBlock{width: max(width, 0), height: max(height, 0)}}
}

// WithContent returns a block holding c, one row per line, padded to the widest
// line. Content without lines yields an empty 0x0 block.
func WithContent[C content.Content[C]](c C) Block[C] {
	return WithLines(c.Lines())
}

// WithLines returns a block with one row per element of lines. Each element must
// be a single line.
func WithLines[C content.Content[C]](lines []C) Block[C] {
	if len(lines) == 0 {
		return Block[C]{}
	}
	return fromRows(rowsOf(lines, 0))
}

// WithLength returns an empty block measuring length along axis and width
// across it.
func WithLength[C content.Content[C]](axis align.Axis, length, width int) Block[C] {
	if axis == align.TopBottom {
		return WithDimensions[C](width, length)
	}
	return WithDimensions[C](length, width)
}

// Filled returns a width x height block tiled with filler. A zero height yields
// an empty block of the requested width.
func Filled[C content.Content[C]](width, height int, filler C) Block[C] {
	return WithDimensions[C](width, height).Fill(filler)
}

// FilledWith returns a width x height block tiled with g.
func FilledWith[C content.Content[C]](width, height int, g content.Grapheme) Block[C] {
	var zero C
	return Filled(width, height, zero.Grapheme(g))
}

func fromRows[C content.Content[C]](rows contentBlock[C]) Block[C] {
	return Block[C]{materialized: true, rows: rows}
}

// Width is the display width in columns.
func (b Block[C]) Width() int {
	if b.materialized {
		return b.rows.width
	}
	return b.empty.width
}

// Height is the number of rows.
func (b Block[C]) Height() int {
	if b.materialized {
		return b.rows.height()
	}
	return b.empty.height
}

// Length returns the size of b along axis.
func (b Block[C]) Length(axis align.Axis) int {
	if axis == align.TopBottom {
		return b.Height()
	}
	return b.Width()
}

// IsEmpty reports whether b has no rows of content. A content block of height
// zero is not empty.
func (b Block[C]) IsEmpty() bool { return !b.materialized }

// Lines returns a copy of the rows of a content block, or nil for an empty block.
func (b Block[C]) Lines() []C {
	if !b.materialized {
		return nil
	}
	return append([]C(nil), b.rows.lines...)
}

// Fill replaces b with filler tiled over its dimensions. Filling a block of
// height zero returns b unchanged.
func (b Block[C]) Fill(filler C) Block[C] {
	if b.materialized && b.rows.height() == 0 {
		return b
	}
	rows, ok := fill(emptyBlock{width: b.Width(), height: b.Height()}, filler)
	if !ok {
		return b
	}
	return fromRows(rows)
}

// FillWith is Fill with a single grapheme.
func (b Block[C]) FillWith(g content.Grapheme) Block[C] {
	var zero C
	return b.Fill(zero.Grapheme(g))
}

// Push appends the lines of c below b, widening the block if c is wider. An
// empty block is filled with spaces first.
func (b Block[C]) Push(c C) Block[C] {
	lines := c.Lines()
	if len(lines) == 0 {
		return b
	}
	rows := b.materialize()
	return fromRows(rowsOf(append(append([]C(nil), rows.lines...), lines...), rows.width))
}

// materialize returns the rows of b, filling an empty block with spaces.
func (b Block[C]) materialize() contentBlock[C] {
	if b.materialized {
		return b.rows
	}
	var zero C
	if rows, ok := fill(b.empty, zero.Space()); ok {
		return rows
	}
	return contentBlock[C]{width: b.empty.width}
}

// Render draws the block with trailing whitespace removed from every row. Each
// row ends with a newline. An empty block renders as the empty string.
func (b Block[C]) Render() string {
	if !b.materialized {
		return ""
	}
	var sb strings.Builder
	for _, line := range b.rows.lines {
		sb.WriteString(strings.TrimRightFunc(line.Render(), unicode.IsSpace))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (b Block[C]) String() string { return b.Render() }

// WriteTo writes every row of b to w followed by a newline. Unlike Render it
// keeps trailing spaces, so each row is exactly Width columns wide.
func (b Block[C]) WriteTo(w io.Writer) (int64, error) {
	if !b.materialized {
		return 0, nil
	}
	var total int64
	for _, line := range b.rows.lines {
		n, err := io.WriteString(w, line.Render()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Restyle replaces the style of every run in b.
func Restyle[S content.Style](b Block[content.Styled[S]], style S) Block[content.Styled[S]] {
	if !b.materialized {
		return b
	}
	lines := make([]content.Styled[S], len(b.rows.lines))
	for i, line := range b.rows.lines {
		lines[i] = line.Restyle(style)
	}
	return fromRows(contentBlock[content.Styled[S]]{lines: lines, width: b.rows.width})
}
