package content

// Content is a single line (or, before Lines is called, several lines) of
// renderable text. C is the implementing type itself, so that every operation
// returns the same concrete content:
//
//	func pad[C content.Content[C]](c C, n int) C {
//		return c.Concat(c.Space().Repeat(n))
//	}
//
// Constructors (Empty, Grapheme, Space, FromString) ignore their receiver and
// may be called on the zero value.
type Content[C any] interface {
	// Empty returns content of width zero.
	Empty() C
	// Grapheme returns content consisting of exactly g.
	Grapheme(g Grapheme) C
	// Space returns a single space.
	Space() C
	// FromString returns content holding s with the default style.
	FromString(s string) C

	// Width is the display width in terminal columns.
	Width() int
	// Repeat concatenates n copies. Non-positive n yields Empty.
	Repeat(n int) C
	// Truncate keeps the longest grapheme prefix whose width does not exceed width.
	Truncate(width int) C
	// Lines splits on line breaks. Empty content has no lines.
	Lines() []C
	// Concat appends other.
	Concat(other C) C
	// Overlay merges the receiver (front) with back, which must have the same
	// width, choosing each glyph with decide.
	Overlay(back C, decide Decider) (C, error)

	// Render produces the terminal representation, including any styling.
	Render() string
}

// Layer names the side of an overlay that supplies a glyph.
type Layer uint8

const (
	Front Layer = iota
	Back
)

func (l Layer) String() string {
	if l == Back {
		return "back"
	}
	return "front"
}

// Decider chooses, for one position of an overlay, which layer's glyph is
// visible.
type Decider func(front, back Grapheme) Layer

// Opaque shows the front glyph unless it is a space.
func Opaque(front, _ Grapheme) Layer {
	if front.IsSpace() {
		return Back
	}
	return Front
}

// PreferFront is like Opaque, except that where both glyphs are spaces the
// front space, and its style, is kept.
func PreferFront(front, back Grapheme) Layer {
	if front.IsSpace() && !back.IsSpace() {
		return Back
	}
	return Front
}

// AlwaysFront shows the front glyph everywhere, spaces included.
func AlwaysFront(Grapheme, Grapheme) Layer { return Front }

// AlwaysBack shows the back glyph everywhere.
func AlwaysBack(Grapheme, Grapheme) Layer { return Back }

type cell struct {
	cluster string
	width   int
	run     int
}

func cellsOf(text string, run int, m Measure) []cell {
	clusters := m.Graphemes(text)
	cells := make([]cell, len(clusters))
	for i, c := range clusters {
		cells[i] = cell{cluster: c, width: m.Width(c), run: run}
	}
	return cells
}

// walkOverlay pairs front and back cells column by column. Each step consumes
// the shortest spans from both sides that end on the same column, decides on
// their leading glyphs, and hands the winning span to emit. Widths must already
// be equal.
func walkOverlay(front, back []cell, decide Decider, emit func(Layer, []cell)) {
	i, j := 0, 0
	for i < len(front) && j < len(back) {
		fs, bs := i, j
		fw, bw := front[i].width, back[j].width
		i++
		j++
		for fw != bw {
			if fw < bw {
				if i == len(front) {
					break
				}
				fw += front[i].width
				i++
			} else {
				if j == len(back) {
					break
				}
				bw += back[j].width
				j++
			}
		}
		layer := decide(Grapheme{cluster: front[fs].cluster}, Grapheme{cluster: back[bs].cluster})
		if layer == Back {
			emit(Back, back[bs:j])
		} else {
			emit(Front, front[fs:i])
		}
	}
	// Whatever remains on either side has zero width and is dropped.
}
