package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Lipgloss adapts a lipgloss.Style. The zero value applies nothing.
//
// Only inline properties (colors, bold, italic and so on) are safe to use.
// Padding, margins, borders and widths change the display width of a run behind
// the block engine's back.
type Lipgloss struct {
	style *lipgloss.Style
}

// FromLipgloss wraps s.
func FromLipgloss(s lipgloss.Style) Lipgloss {
	return Lipgloss{style: &s}
}

// Apply renders text with the wrapped style.
func (l Lipgloss) Apply(text string) string {
	if l.style == nil || text == "" {
		return text
	}
	return l.style.Render(text)
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}
