package block

import (
	"fmt"

	"github.com/aretw0/tessera/pkg/content"
)

// contentBlock holds one line per row. Every line has display width width.
type contentBlock[C content.Content[C]] struct {
	lines []C
	width int
}

// rowsOf normalizes lines to a common width of at least minWidth.
func rowsOf[C content.Content[C]](lines []C, minWidth int) contentBlock[C] {
	width := max(minWidth, 0)
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = line.Width()
		width = max(width, widths[i])
	}
	out := make([]C, len(lines))
	for i, line := range lines {
		out[i] = padLine(line, width-widths[i])
	}
	return contentBlock[C]{lines: out, width: width}
}

func padLine[C content.Content[C]](line C, n int) C {
	if n <= 0 {
		return line
	}
	return line.Concat(line.Space().Repeat(n))
}

func (c contentBlock[C]) height() int { return len(c.lines) }

func (c contentBlock[C]) dimensions() emptyBlock {
	return emptyBlock{width: c.width, height: c.height()}
}

func (c contentBlock[C]) padToWidthAtRight(width int) contentBlock[C] {
	if width <= c.width {
		return c
	}
	lines := make([]C, len(c.lines))
	for i, line := range c.lines {
		lines[i] = padLine(line, width-c.width)
	}
	return contentBlock[C]{lines: lines, width: width}
}

func (c contentBlock[C]) padToHeightAtBottom(height int) contentBlock[C] {
	if height <= c.height() {
		return c
	}
	var zero C
	spacer, _ := fill(emptyBlock{width: c.width, height: height - c.height()}, zero.Space())
	return c.joinTopToBottomAtLeft(spacer)
}

func (c contentBlock[C]) joinLeftToRightAtTop(other contentBlock[C]) contentBlock[C] {
	height := max(c.height(), other.height())
	left, right := c.padToHeightAtBottom(height), other.padToHeightAtBottom(height)
	lines := make([]C, height)
	for i := range lines {
		lines[i] = left.lines[i].Concat(right.lines[i])
	}
	return contentBlock[C]{lines: lines, width: c.width + other.width}
}

func (c contentBlock[C]) joinTopToBottomAtLeft(other contentBlock[C]) contentBlock[C] {
	width := max(c.width, other.width)
	top, bottom := c.padToWidthAtRight(width), other.padToWidthAtRight(width)
	lines := make([]C, 0, len(top.lines)+len(bottom.lines))
	lines = append(lines, top.lines...)
	lines = append(lines, bottom.lines...)
	return contentBlock[C]{lines: lines, width: width}
}

// overlay places c in front of back after padding both to their union.
func (c contentBlock[C]) overlay(back contentBlock[C], decide content.Decider) contentBlock[C] {
	size := c.dimensions().union(back.dimensions())
	front := c.padToWidthAtRight(size.width).padToHeightAtBottom(size.height)
	back = back.padToWidthAtRight(size.width).padToHeightAtBottom(size.height)
	lines := make([]C, size.height)
	for i := range lines {
		line, err := front.lines[i].Overlay(back.lines[i], decide)
		if err != nil {
			panic(fmt.Sprintf("block: overlay row %d: %v", i, err))
		}
		lines[i] = line
	}
	return contentBlock[C]{lines: lines, width: size.width}
}
