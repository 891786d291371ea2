package style

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera/pkg/block"
	"github.com/aretw0/tessera/pkg/content"
)

func TestTermenv_ZeroIsIdentity(t *testing.T) {
	var s Termenv
	assert.True(t, s.IsZero())
	assert.Equal(t, "abc", s.Apply("abc"))
	assert.True(t, s.WithProfile(termenv.ANSI).IsZero())
}

func TestTermenv_Apply(t *testing.T) {
	s := Termenv{Foreground: "1", Bold: true}.WithProfile(termenv.ANSI)
	out := s.Apply("abc")
	assert.NotEqual(t, "abc", out)
	assert.Contains(t, out, "abc")
	assert.Equal(t, "abc", Strip(out))

	// Ascii strips all decoration.
	assert.Equal(t, "abc", s.WithProfile(termenv.Ascii).Apply("abc"))
	assert.Equal(t, "", s.Apply(""))
}

func TestTermenv_Merge(t *testing.T) {
	base := Termenv{Foreground: "#ffffff", Bold: true}
	got := base.Merge(Termenv{Foreground: "#000000", Italic: true})
	assert.Equal(t, Termenv{Foreground: "#000000", Bold: true, Italic: true}, got)
	assert.Equal(t, base, base.Merge(Termenv{}))
}

func TestParse(t *testing.T) {
	s, err := Parse("bold fg=#ff8800 bg=236 underline")
	require.NoError(t, err)
	assert.Equal(t, Termenv{Foreground: "#ff8800", Background: "236", Bold: true, Underline: true}, s)
	assert.Equal(t, "fg=#ff8800 bg=236 bold underline", s.String())

	again, err := Parse(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, again)

	empty, err := Parse("  ")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = Parse("blinking")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
	_, err = Parse("fg=")
	assert.ErrorIs(t, err, ErrMissingColor)
}

func TestLipgloss(t *testing.T) {
	var zero Lipgloss
	assert.Equal(t, "abc", zero.Apply("abc"))

	l := FromLipgloss(lipgloss.NewStyle().Bold(true))
	assert.Equal(t, "abc", Strip(l.Apply("abc")))
}

func TestStyledBlock(t *testing.T) {
	red := Termenv{Foreground: "1"}.WithProfile(termenv.ANSI)
	b := block.WithContent(content.NewStyled(red, "ab\nc"))
	rendered := b.Render()
	assert.Equal(t, "ab\nc\n", Strip(rendered))

	// Padding carries the zero style and stays undecorated.
	lines := b.Lines()
	require.Len(t, lines, 2)
	runs := lines[1].Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, red, runs[0].Style)
	assert.True(t, runs[1].Style.IsZero())
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in   string
		want termenv.Profile
	}{
		{"", termenv.Ascii},
		{"none", termenv.Ascii},
		{"ANSI", termenv.ANSI},
		{"256", termenv.ANSI256},
		{"truecolor", termenv.TrueColor},
	}
	for _, tt := range tests {
		got, err := ParseProfile(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		if tt.in != "" && tt.in != "256" {
			assert.Equal(t, strings.ToLower(tt.in), ProfileName(got))
		}
	}

	_, err := ParseProfile("sepia")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}
