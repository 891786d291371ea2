package content

import (
	"fmt"
	"strings"
)

// Style decorates a run of text for the terminal. Its zero value must leave text
// unchanged, since padding and glyphs created by constructors carry the zero
// style.
type Style interface {
	Apply(text string) string
}

// Plain is the identity style.
type Plain struct{}

func (Plain) Apply(text string) string { return text }

// Run is a span of text rendered with one style.
type Run[S Style] struct {
	Style S
	Text  string
}

// Styled is content made of runs, each with its own style.
type Styled[S Style] struct {
	runs []Run[S]
}

var _ Content[Styled[Plain]] = Styled[Plain]{}

// NewStyled returns content holding text in a single run.
func NewStyled[S Style](style S, text string) Styled[S] {
	if text == "" {
		return Styled[S]{}
	}
	return Styled[S]{runs: []Run[S]{{Style: style, Text: text}}}
}

// StyledOf returns content made of runs in order. Runs with empty text are
// skipped.
func StyledOf[S Style](runs ...Run[S]) Styled[S] {
	var s Styled[S]
	for _, r := range runs {
		s.runs = appendRun(s.runs, r)
	}
	return s
}

// Runs returns a copy of the runs.
func (s Styled[S]) Runs() []Run[S] {
	return append([]Run[S](nil), s.runs...)
}

// Restyle replaces every run's style with style, merging the text into one run.
func (s Styled[S]) Restyle(style S) Styled[S] {
	return NewStyled(style, s.String())
}

// String returns the text without styling.
func (s Styled[S]) String() string {
	var b strings.Builder
	for _, r := range s.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func (Styled[S]) Empty() Styled[S] { return Styled[S]{} }

func (Styled[S]) Grapheme(g Grapheme) Styled[S] {
	var zero S
	return NewStyled(zero, g.cluster)
}

func (s Styled[S]) Space() Styled[S] { return s.Grapheme(Space) }

func (Styled[S]) FromString(text string) Styled[S] {
	var zero S
	return NewStyled(zero, text)
}

func (s Styled[S]) Width() int {
	m := CurrentMeasure()
	w := 0
	for _, r := range s.runs {
		w += m.Width(r.Text)
	}
	return w
}

func (s Styled[S]) Repeat(n int) Styled[S] {
	if n <= 0 || len(s.runs) == 0 {
		return Styled[S]{}
	}
	if len(s.runs) == 1 {
		r := s.runs[0]
		return NewStyled(r.Style, strings.Repeat(r.Text, n))
	}
	runs := make([]Run[S], 0, len(s.runs)*n)
	for range n {
		runs = append(runs, s.runs...)
	}
	return Styled[S]{runs: runs}
}

func (s Styled[S]) Truncate(width int) Styled[S] {
	m := CurrentMeasure()
	var out Styled[S]
	remaining := width
	for _, r := range s.runs {
		if remaining <= 0 {
			break
		}
		w := m.Width(r.Text)
		if w <= remaining {
			out.runs = append(out.runs, r)
			remaining -= w
			continue
		}
		out.runs = appendRun(out.runs, Run[S]{Style: r.Style, Text: truncate(r.Text, remaining, m)})
		break
	}
	return out
}

func (s Styled[S]) Lines() []Styled[S] {
	var (
		lines []Styled[S]
		line  []Run[S]
	)
	for _, r := range s.runs {
		pieces := strings.Split(r.Text, "\n")
		for i, piece := range pieces {
			if i > 0 {
				lines = append(lines, Styled[S]{runs: line})
				line = nil
			}
			if i < len(pieces)-1 {
				piece = strings.TrimSuffix(piece, "\r")
			}
			line = appendRun(line, Run[S]{Style: r.Style, Text: piece})
		}
	}
	if len(line) > 0 {
		lines = append(lines, Styled[S]{runs: line})
	}
	return lines
}

func (s Styled[S]) Concat(other Styled[S]) Styled[S] {
	runs := make([]Run[S], 0, len(s.runs)+len(other.runs))
	runs = append(runs, s.runs...)
	runs = append(runs, other.runs...)
	return Styled[S]{runs: runs}
}

func (s Styled[S]) Overlay(back Styled[S], decide Decider) (Styled[S], error) {
	m := CurrentMeasure()
	fw, bw := s.Width(), back.Width()
	if fw != bw {
		return Styled[S]{}, fmt.Errorf("%w: front %d, back %d", ErrIncongruent, fw, bw)
	}

	var (
		out      Styled[S]
		current  strings.Builder
		lastSide Layer
		lastRun  = -1
	)
	flush := func() {
		if lastRun < 0 {
			return
		}
		style := s.runs
		if lastSide == Back {
			style = back.runs
		}
		out.runs = appendRun(out.runs, Run[S]{Style: style[lastRun].Style, Text: current.String()})
		current.Reset()
	}
	walkOverlay(cellsOfRuns(s.runs, m), cellsOfRuns(back.runs, m), decide, func(side Layer, cells []cell) {
		for _, c := range cells {
			if side != lastSide || c.run != lastRun {
				flush()
				lastSide, lastRun = side, c.run
			}
			current.WriteString(c.cluster)
		}
	})
	flush()
	return out, nil
}

func (s Styled[S]) Render() string {
	var b strings.Builder
	for _, r := range s.runs {
		b.WriteString(r.Style.Apply(r.Text))
	}
	return b.String()
}

func cellsOfRuns[S Style](runs []Run[S], m Measure) []cell {
	var cells []cell
	for i, r := range runs {
		cells = append(cells, cellsOf(r.Text, i, m)...)
	}
	return cells
}

func appendRun[S Style](runs []Run[S], r Run[S]) []Run[S] {
	if r.Text == "" {
		return runs
	}
	return append(runs, r)
}
