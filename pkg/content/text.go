package content

import (
	"fmt"
	"strings"
)

// Text is unstyled content.
type Text string

var _ Content[Text] = Text("")

func (Text) Empty() Text              { return "" }
func (Text) Grapheme(g Grapheme) Text { return Text(g.cluster) }
func (Text) Space() Text              { return Text(Space.cluster) }
func (Text) FromString(s string) Text { return Text(s) }
func (t Text) Width() int             { return Width(string(t)) }
func (t Text) Concat(other Text) Text { return t + other }
func (t Text) Render() string         { return string(t) }
func (t Text) String() string         { return string(t) }

func (t Text) Repeat(n int) Text {
	if n <= 0 {
		return ""
	}
	return Text(strings.Repeat(string(t), n))
}

func (t Text) Truncate(width int) Text {
	return Text(truncate(string(t), width, CurrentMeasure()))
}

func (t Text) Lines() []Text {
	pieces := splitLines(string(t))
	if pieces == nil {
		return nil
	}
	lines := make([]Text, len(pieces))
	for i, p := range pieces {
		lines[i] = Text(p)
	}
	return lines
}

func (t Text) Overlay(back Text, decide Decider) (Text, error) {
	m := CurrentMeasure()
	fw, bw := m.Width(string(t)), m.Width(string(back))
	if fw != bw {
		return "", fmt.Errorf("%w: front %d, back %d", ErrIncongruent, fw, bw)
	}
	var b strings.Builder
	b.Grow(max(len(t), len(back)))
	walkOverlay(cellsOf(string(t), 0, m), cellsOf(string(back), 0, m), decide, func(_ Layer, cells []cell) {
		for _, c := range cells {
			b.WriteString(c.cluster)
		}
	})
	return Text(b.String()), nil
}

// truncate keeps whole graphemes while their running width fits in width.
func truncate(text string, width int, m Measure) string {
	if width <= 0 || text == "" {
		return ""
	}
	if m.Width(text) <= width {
		return text
	}
	used, end := 0, 0
	for _, g := range m.Graphemes(text) {
		w := m.Width(g)
		if used+w > width {
			break
		}
		used += w
		end += len(g)
	}
	return text[:end]
}

// splitLines splits on "\n", dropping a "\r" before each break and the empty
// segment after a trailing break.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	pieces := strings.Split(text, "\n")
	last := len(pieces) - 1
	for i := 0; i < last; i++ {
		pieces[i] = strings.TrimSuffix(pieces[i], "\r")
	}
	if pieces[last] == "" {
		pieces = pieces[:last]
	}
	return pieces
}
