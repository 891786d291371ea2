package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/pkg/layout"
	"github.com/aretw0/tessera/pkg/style"
)

func TestHandleRender(t *testing.T) {
	s := NewServer(tessera.New(), nil)
	ctx := context.Background()

	resp, err := s.handleRender(ctx, mcp.CallToolRequest{}, RenderArgs{
		Document: "layout: {kind: frame, title: hi, child: hello}",
	})
	require.NoError(t, err)
	assert.Equal(t, "┌ hi ─┐\n│hello│\n└─────┘\n", resp.Output)
	assert.Equal(t, 7, resp.Width)
	assert.Equal(t, 3, resp.Height)

	resp, err = s.handleRender(ctx, mcp.CallToolRequest{}, RenderArgs{
		Document: `{"layout": "漢字"}`,
		Format:   "json",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Width)
	assert.Equal(t, 1, resp.Height)
}

func TestHandleRender_Color(t *testing.T) {
	s := NewServer(tessera.New(), nil)
	resp, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, RenderArgs{
		Document: "layout: {kind: text, text: ab, style: bold}",
		Color:    "ansi",
	})
	require.NoError(t, err)
	assert.Equal(t, "ab\n", style.Strip(resp.Output))
	assert.NotEqual(t, "ab\n", resp.Output)
	assert.Equal(t, 2, resp.Width)
}

func TestHandleRender_Errors(t *testing.T) {
	s := NewServer(tessera.New(), nil)
	ctx := context.Background()

	_, err := s.handleRender(ctx, mcp.CallToolRequest{}, RenderArgs{})
	assert.Error(t, err)

	_, err = s.handleRender(ctx, mcp.CallToolRequest{}, RenderArgs{Document: "layout: x", Format: "xml"})
	assert.ErrorIs(t, err, layout.ErrUnsupportedFormat)

	_, err = s.handleRender(ctx, mcp.CallToolRequest{}, RenderArgs{Document: "layout: x", Color: "sepia"})
	assert.ErrorIs(t, err, style.ErrUnknownProfile)

	_, err = s.handleRender(ctx, mcp.CallToolRequest{}, RenderArgs{Document: "layout: {kind: spiral}"})
	assert.ErrorIs(t, err, layout.ErrUnknownKind)
}
