/*
Package tessera composes rectangular blocks of terminal text.

A block is a grid of cells with a width and a height. Blocks are padded, joined
side by side or on top of each other, and overlaid, and every operation keeps
the result rectangular. Wide glyphs (CJK, emoji) occupy two columns and are
never split.

# Layers

  - pkg/content: the content types a block is built from. Text is plain
    strings; Styled carries style runs that survive every block operation.
  - pkg/block: the block algebra (pad, join, overlay, fill) and Oriented, a
    block bound to an alignment.
  - pkg/primitive: lines, frames, cards and dividers in a choice of strokes.
  - pkg/layout: YAML or JSON documents compiled into styled blocks.

The Engine in this package renders documents and caches the output:

	eng := tessera.New(
		tessera.WithCache(memory.NewCache()),
	)
	out, err := eng.Render(ctx, []byte(`
	stroke: rounded
	layout:
	  kind: frame
	  title: hi
	  child: "hello"
	`), layout.YAML)

Blocks can also be built directly:

	b := block.Text("ab\ncd").JoinLeftToRightAtTop(block.Text("X"))
	fmt.Print(primitive.Frame(b, primitive.Single))

The tessera command exposes the same over a CLI, an HTTP server and an MCP
server.
*/
package tessera
