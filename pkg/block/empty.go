package block

import "github.com/aretw0/tessera/pkg/content"

// emptyBlock is a rectangle with dimensions but no rows.
type emptyBlock struct {
	width  int
	height int
}

func (e emptyBlock) joinLeftToRightAtTop(other emptyBlock) emptyBlock {
	return emptyBlock{width: e.width + other.width, height: max(e.height, other.height)}
}

func (e emptyBlock) joinTopToBottomAtLeft(other emptyBlock) emptyBlock {
	return emptyBlock{width: max(e.width, other.width), height: e.height + other.height}
}

func (e emptyBlock) union(other emptyBlock) emptyBlock {
	return emptyBlock{width: max(e.width, other.width), height: max(e.height, other.height)}
}

// fill materializes e by tiling filler. Lines of filler are cycled to reach the
// height and tiled then truncated to reach the width. It reports false for a zero
// height, where there is no row to hold content.
func fill[C content.Content[C]](e emptyBlock, filler C) (contentBlock[C], bool) {
	if e.height <= 0 {
		return contentBlock[C]{}, false
	}
	var zero C
	space := zero.Space()

	source := filler.Lines()
	if len(source) == 0 {
		source = []C{space}
	}

	lines := make([]C, e.height)
	for i := range lines {
		line := source[i%len(source)]
		w := line.Width()
		if w == 0 {
			line, w = space, 1
		}
		if w < e.width {
			line = line.Repeat((e.width + w - 1) / w)
		}
		line = line.Truncate(e.width)
		if short := e.width - line.Width(); short > 0 {
			line = line.Concat(space.Repeat(short))
		}
		lines[i] = line
	}
	return contentBlock[C]{lines: lines, width: max(e.width, 0)}, true
}
