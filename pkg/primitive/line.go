// Package primitive draws straight lines, rules and box borders as blocks.
package primitive

import (
	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/block"
	"github.com/aretw0/tessera/pkg/content"
)

// TerminalCell describes the glyphs at both ends of a line: either one glyph
// used at both ends, or a distinct start and end glyph.
type TerminalCell struct {
	start content.Grapheme
	end   content.Grapheme
}

// Only uses g at both ends.
func Only(g content.Grapheme) TerminalCell {
	return TerminalCell{start: g, end: g}
}

// StartEnd uses start at the origin end of the line and end at the other.
func StartEnd(start, end content.Grapheme) TerminalCell {
	return TerminalCell{start: start, end: end}
}

func (t TerminalCell) Start() content.Grapheme { return t.start }
func (t TerminalCell) End() content.Grapheme   { return t.end }

// LinePalette is the set of glyphs for one line. Only is used when the line is a
// single cell long.
type LinePalette struct {
	Only     content.Grapheme
	Middle   content.Grapheme
	Terminal TerminalCell
}

// UniformPalette uses g for every cell of the line.
func UniformPalette(g content.Grapheme) LinePalette {
	return LinePalette{Only: g, Middle: g, Terminal: Only(g)}
}

// PaletteAt returns p for either axis.
func (p LinePalette) PaletteAt(align.Axis) LinePalette { return p }

// Palette selects the line palette for an axis.
type Palette interface {
	PaletteAt(axis align.Axis) LinePalette
}

// AxialPalette holds a different palette per axis.
type AxialPalette align.Axial[LinePalette]

func (p AxialPalette) PaletteAt(axis align.Axis) LinePalette {
	return align.Axial[LinePalette](p).At(axis)
}

// Line draws a line of length cells along axis using the palette for that axis.
// A zero length yields a zero-size block and a length of one the Only glyph.
func Line[C content.Content[C]](axis align.Axis, length int, palette Palette) block.Block[C] {
	p := palette.PaletteAt(axis)
	var zero C
	switch {
	case length <= 0:
		return block.Block[C]{}
	case length == 1:
		return block.WithContent(zero.Grapheme(p.Only))
	}

	across := 1
	if axis == align.TopBottom {
		across = max(1, p.Middle.Width())
	}
	along := align.Along(axis, axis.Orthogonal().Origin())
	middle := block.WithLength[C](axis, length-2, across).Fill(zero.Grapheme(p.Middle))
	return block.WithContent(zero.Grapheme(p.Terminal.Start())).
		JoinAt(along, middle).
		JoinAt(along, block.WithContent(zero.Grapheme(p.Terminal.End())))
}
