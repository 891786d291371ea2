package primitive

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/content"
)

// ErrUnknownStroke is returned by StrokeByName for names that are not built in.
var ErrUnknownStroke = errors.New("unknown stroke")

// Stroke is the glyph set for box borders: one line palette per axis and one
// glyph per corner.
type Stroke struct {
	Name    string
	Lines   align.Axial[LinePalette]
	Corners align.Quadrant[content.Grapheme]
}

// PaletteAt returns the line palette for axis.
func (s Stroke) PaletteAt(axis align.Axis) LinePalette {
	return s.Lines.At(axis)
}

// Corner returns the glyph in the corner (v, h).
func (s Stroke) Corner(v align.VerticalAlignment, h align.HorizontalAlignment) content.Grapheme {
	return s.Corners.At(v, h)
}

// Rotate turns the stroke a quarter turn toward a, with the convention of
// align.Quadrant.Rotate. Quarter turns swap the horizontal and vertical palettes.
func (s Stroke) Rotate(a align.Alignment) Stroke {
	rotated := Stroke{Name: s.Name, Lines: s.Lines, Corners: s.Corners.Rotate(a)}
	if a.Axis() == align.LeftRight {
		rotated.Lines = s.Lines.Invert()
	}
	return rotated
}

// NewStroke builds a stroke from runes in the order top-left, horizontal,
// top-right, vertical, bottom-left, bottom-right.
func NewStroke(name string, glyphs [6]rune) Stroke {
	g := func(i int) content.Grapheme { return content.GraphemeOf(glyphs[i]) }
	return Stroke{
		Name: name,
		Lines: align.Axial[LinePalette]{
			Horizontal: UniformPalette(g(1)),
			Vertical:   UniformPalette(g(3)),
		},
		Corners: align.Quadrant[content.Grapheme]{
			Top:    align.Horizontal[content.Grapheme]{Left: g(0), Right: g(2)},
			Bottom: align.Horizontal[content.Grapheme]{Left: g(4), Right: g(5)},
		},
	}
}

var (
	Single  = NewStroke("single", [6]rune{'┌', '─', '┐', '│', '└', '┘'})
	Double  = NewStroke("double", [6]rune{'╔', '═', '╗', '║', '╚', '╝'})
	Rounded = NewStroke("rounded", [6]rune{'╭', '─', '╮', '│', '╰', '╯'})
	Heavy   = NewStroke("heavy", [6]rune{'┏', '━', '┓', '┃', '┗', '┛'})
	ASCII   = NewStroke("ascii", [6]rune{'+', '-', '+', '|', '+', '+'})
	// None draws an invisible border of spaces.
	None = NewStroke("none", [6]rune{' ', ' ', ' ', ' ', ' ', ' '})
)

var strokes = map[string]Stroke{
	Single.Name:  Single,
	Double.Name:  Double,
	Rounded.Name: Rounded,
	Heavy.Name:   Heavy,
	ASCII.Name:   ASCII,
	None.Name:    None,
}

// StrokeByName looks up a built-in stroke, ignoring case. An empty name selects
// Single.
func StrokeByName(name string) (Stroke, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Single, nil
	}
	s, ok := strokes[name]
	if !ok {
		return Stroke{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStroke, name, strings.Join(StrokeNames(), ", "))
	}
	return s, nil
}

// StrokeNames lists the built-in strokes in alphabetical order.
func StrokeNames() []string {
	names := make([]string, 0, len(strokes))
	for name := range strokes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
