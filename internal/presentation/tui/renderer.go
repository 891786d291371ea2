package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown with glamour. It satisfies layout.MarkdownRenderer.
type Markdown struct {
	style string
}

// MarkdownOption configures a Markdown renderer.
type MarkdownOption func(*Markdown)

// WithStyle selects a glamour standard style ("dark", "light", "notty", ...).
// Without it the style follows the terminal background.
func WithStyle(name string) MarkdownOption {
	return func(m *Markdown) {
		m.style = name
	}
}

// NewMarkdown creates a glamour backed markdown renderer.
func NewMarkdown(opts ...MarkdownOption) *Markdown {
	m := &Markdown{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RenderMarkdown renders source wrapped at width columns. Zero keeps glamour's
// default wrap.
func (m *Markdown) RenderMarkdown(source string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if m.style != "" {
		opts = []glamour.TermRendererOption{glamour.WithStandardStyle(m.style)}
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(source)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
