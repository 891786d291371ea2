package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera/pkg/style"
)

func TestMarkdown_Render(t *testing.T) {
	md := NewMarkdown(WithStyle("notty"))

	out, err := md.RenderMarkdown("# Hello\n\nSome *text*.", 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "text")
}

func TestMarkdown_WordWrap(t *testing.T) {
	md := NewMarkdown(WithStyle("notty"))
	source := strings.Repeat("lorem ipsum ", 20)

	narrow, err := md.RenderMarkdown(source, 30)
	require.NoError(t, err)
	wide, err := md.RenderMarkdown(source, 200)
	require.NoError(t, err)

	assert.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
}

func TestBanner(t *testing.T) {
	b := Banner("1.2.3", termenv.Ascii)
	out := b.Render()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(bannerArt)+3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "v1.2.3"))

	// The Ascii profile leaves the banner undecorated.
	assert.Equal(t, out, style.Strip(out))

	colored := Banner("1.2.3", termenv.TrueColor).Render()
	assert.NotEqual(t, out, colored)
	assert.Equal(t, out, style.Strip(colored))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintBanner(&buf, "0.0.1"))
	assert.Contains(t, style.Strip(buf.String()), "v0.0.1")
}
