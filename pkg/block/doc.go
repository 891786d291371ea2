/*
Package block implements rectangular blocks of content and the operations that
compose them: padding, joining along either axis, overlaying and filling.

A Block is in one of two modes. An empty block has dimensions but no rows, so it
can stand in for a gap of any size without allocating a line per row. A content
block holds one line per row, all padded to the same display width. Operations
never turn a content block back into an empty one.

	greeting := block.Text("hello\nworld")
	boxed := greeting.
		PadAtLeft(1).
		PadAtRight(1).
		JoinLeftToRightAtTop(block.Text("!"))
	fmt.Print(boxed.Render())

Empty operands fuse with content operands without materializing when the
dimension they contribute along the join axis is zero. Otherwise they are filled
with spaces first, so the result is always rectangular.

Oriented binds a block to a corner. Its JoinNatural and PadNatural methods grow
the block away from that corner, which is how frames and rules are assembled
without repeating alignment arguments at every step.
*/
package block
