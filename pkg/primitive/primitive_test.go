package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera/pkg/align"
	"github.com/aretw0/tessera/pkg/block"
	"github.com/aretw0/tessera/pkg/content"
)

func g(r rune) content.Grapheme { return content.GraphemeOf(r) }

func TestLine(t *testing.T) {
	arrows := LinePalette{Only: g('-'), Middle: g('-'), Terminal: StartEnd(g('<'), g('>'))}
	assert.Equal(t, "<--->\n", Line[content.Text](align.LeftRight, 5, arrows).Render())

	axial := AxialPalette{Horizontal: UniformPalette(g('-')), Vertical: UniformPalette(g('|'))}
	assert.Equal(t, "-----\n", Line[content.Text](align.LeftRight, 5, axial).Render())
	assert.Equal(t, "|\n|\n|\n", Line[content.Text](align.TopBottom, 3, axial).Render())
	assert.Equal(t, "|\n|\n|\n", Line[content.Text](align.TopBottom, 3, UniformPalette(g('|'))).Render())
}

func TestLine_ShortLengths(t *testing.T) {
	arrows := LinePalette{Only: g('*'), Middle: g('-'), Terminal: StartEnd(g('<'), g('>'))}

	zero := Line[content.Text](align.LeftRight, 0, arrows)
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, 0, zero.Width())
	assert.Equal(t, 0, zero.Height())

	assert.Equal(t, "*\n", Line[content.Text](align.LeftRight, 1, arrows).Render())
	assert.Equal(t, "<>\n", Line[content.Text](align.LeftRight, 2, arrows).Render())
	assert.Equal(t, "<\n>\n", Line[content.Text](align.TopBottom, 2, arrows).Render())
	assert.Equal(t, "<\n-\n-\n>\n", Line[content.Text](align.TopBottom, 4, arrows).Render())
}

func TestTerminalCell(t *testing.T) {
	only := Only(g('x'))
	assert.Equal(t, g('x'), only.Start())
	assert.Equal(t, g('x'), only.End())

	pair := StartEnd(g('a'), g('b'))
	assert.Equal(t, g('a'), pair.Start())
	assert.Equal(t, g('b'), pair.End())
}

func TestFrame(t *testing.T) {
	got := Frame(block.Text("ab\nc"), Single)
	assert.Equal(t, "┌──┐\n│ab│\n│c │\n└──┘\n", got.Render())

	got = Frame(block.Text("x"), Rounded)
	assert.Equal(t, "╭─╮\n│x│\n╰─╯\n", got.Render())

	got = Frame(block.Plain{}, Double)
	assert.Equal(t, "╔╗\n╚╝\n", got.Render())

	got = Frame(block.WithDimensions[content.Text](2, 1), ASCII)
	assert.Equal(t, "+--+\n|  |\n+--+\n", got.Render())

	wide := Frame(block.Text("漢"), Heavy)
	assert.Equal(t, "┏━━┓\n┃漢┃\n┗━━┛\n", wide.Render())
}

func TestCard(t *testing.T) {
	got := Card(block.Text("hello"), "hi", Single)
	assert.Equal(t, "┌ hi ─┐\n│hello│\n└─────┘\n", got.Render())

	// Too narrow for a title.
	got = Card(block.Text("ab"), "title", Single)
	assert.Equal(t, Frame(block.Text("ab"), Single), got)

	got = Card(block.Text("abcdefg"), "a long title", Single)
	lines := got.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, content.Text("┌ a lon ┐"), lines[0])
}

func TestDivider(t *testing.T) {
	assert.Equal(t, "── hi ───\n", Divider[content.Text](9, "hi", Single).Render())
	assert.Equal(t, "═════\n", Divider[content.Text](5, "", Double).Render())
	assert.Equal(t, "----\n", Divider[content.Text](4, "hi", ASCII).Render())
}

func TestRule(t *testing.T) {
	assert.Equal(t, "━━━\n", Rule[content.Text](align.LeftRight, 3, Heavy).Render())
	assert.Equal(t, "║\n║\n", Rule[content.Text](align.TopBottom, 2, Double).Render())
}

func TestStrokeByName(t *testing.T) {
	s, err := StrokeByName("Rounded")
	require.NoError(t, err)
	assert.Equal(t, Rounded, s)

	s, err = StrokeByName("")
	require.NoError(t, err)
	assert.Equal(t, Single, s)

	_, err = StrokeByName("dotted")
	assert.ErrorIs(t, err, ErrUnknownStroke)

	assert.Equal(t, []string{"ascii", "double", "heavy", "none", "rounded", "single"}, StrokeNames())
}

func TestStroke_Rotate(t *testing.T) {
	assert.Equal(t, Single, Single.Rotate(align.Top))

	cw := Single.Rotate(align.Right)
	assert.Equal(t, g('└'), cw.Corner(align.Top, align.Left))
	assert.Equal(t, g('│'), cw.PaletteAt(align.LeftRight).Middle)
	assert.Equal(t, Single, cw.Rotate(align.Left))
}

func TestInset(t *testing.T) {
	got := Inset(block.Text("x"), align.Perimeter[int]{Left: 1, Right: 2, Top: 1, Bottom: 0})
	assert.Equal(t, 4, got.Width())
	assert.Equal(t, 2, got.Height())
	assert.Equal(t, "\n x\n", got.Render())
}
