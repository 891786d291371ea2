package dsl

// Node provides a fluent API for configuring a layout node.
// Setters that do not apply to the node's kind are reported by the compiler.
type Node struct {
	fields map[string]any
}

func newNode(kind string) *Node {
	return &Node{fields: map[string]any{"kind": kind}}
}

func (n *Node) set(key string, value any) *Node {
	n.fields[key] = value
	return n
}

// Raw returns the node as the generic map the layout compiler reads.
func (n *Node) Raw() map[string]any {
	out := make(map[string]any, len(n.fields))
	for k, v := range n.fields {
		switch v := v.(type) {
		case *Node:
			out[k] = v.Raw()
		case []*Node:
			children := make([]any, len(v))
			for i, c := range v {
				children[i] = c.Raw()
			}
			out[k] = children
		default:
			out[k] = v
		}
	}
	return out
}

// Text creates a text node.
func Text(text string) *Node { return newNode("text").set("text", text) }

// Fill creates a width x height block of a repeated filler.
func Fill(width, height int, with string) *Node {
	return newNode("fill").set("width", width).set("height", height).set("with", with)
}

// Line creates a line along axis.
func Line(axis string, length int) *Node {
	return newNode("line").set("axis", axis).set("length", length)
}

// Divider creates a horizontal line with a centered label.
func Divider(length int, label string) *Node {
	return newNode("divider").set("length", length).set("label", label)
}

// Frame draws a border around child.
func Frame(child *Node) *Node { return newNode("frame").set("child", child) }

// Join places children one after the other along axis.
func Join(axis string, children ...*Node) *Node {
	return newNode("join").set("axis", axis).set("children", children)
}

// Row joins children left to right.
func Row(children ...*Node) *Node { return Join("left-right", children...) }

// Column joins children top to bottom.
func Column(children ...*Node) *Node { return Join("top-bottom", children...) }

// Overlay stacks children, the first one in front.
func Overlay(children ...*Node) *Node { return newNode("overlay").set("children", children) }

// Pad adds space around child.
func Pad(child *Node) *Node { return newNode("pad").set("child", child) }

// Markdown renders markdown source.
func Markdown(source string) *Node { return newNode("markdown").set("source", source) }

// Ref refers to a node defined with Builder.Def.
func Ref(name string) *Node { return newNode("ref").set("ref", name) }

// Style sets the style description, e.g. "bold fg=#ff8800".
func (n *Node) Style(desc string) *Node { return n.set("style", desc) }

// Title sets the title of a frame.
func (n *Node) Title(title string) *Node { return n.set("title", title) }

// Stroke overrides the document stroke for a line, divider or frame.
func (n *Node) Stroke(name string) *Node { return n.set("stroke", name) }

// Align sets the alignment of a text: left, right or center.
func (n *Node) Align(a string) *Node { return n.set("align", a) }

// Wrap wraps a text at width columns.
func (n *Node) Wrap(width int) *Node { return n.set("wrap", width) }

// Gap inserts space between the children of a join.
func (n *Node) Gap(cells int) *Node { return n.set("gap", cells) }

// At aligns the children of a join on the other axis.
func (n *Node) At(a string) *Node { return n.set("at", a) }

// Decider picks which layer of an overlay shows through.
func (n *Node) Decider(name string) *Node { return n.set("decider", name) }

// Sides pads a node by the given cells on each side.
func (n *Node) Sides(left, right, top, bottom int) *Node {
	return n.set("left", left).set("right", right).set("top", top).set("bottom", bottom)
}

// Size grows a pad node to at least width x height.
func (n *Node) Size(width, height int) *Node {
	return n.set("width", width).set("height", height)
}

// Toward sets the edges that Size grows: horizontal is left or right,
// vertical is top or bottom.
func (n *Node) Toward(horizontal, vertical string) *Node {
	return n.set("horizontal", horizontal).set("vertical", vertical)
}

// Width sets the wrap width of a markdown node.
func (n *Node) Width(width int) *Node { return n.set("width", width) }
