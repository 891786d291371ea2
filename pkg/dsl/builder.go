package dsl

import (
	"github.com/aretw0/tessera/pkg/layout"
)

// Builder manages the document construction.
type Builder struct {
	stroke string
	defs   map[string]*Node
}

// New creates a new document builder.
func New() *Builder {
	return &Builder{
		defs: make(map[string]*Node),
	}
}

// Stroke sets the default stroke of the document.
func (b *Builder) Stroke(name string) *Builder {
	b.stroke = name
	return b
}

// Def names a node so that Ref(name) can reuse it.
// Defining a name twice replaces the earlier node.
func (b *Builder) Def(name string, n *Node) *Builder {
	b.defs[name] = n
	return b
}

// Build produces the document with root as its layout.
func (b *Builder) Build(root *Node) *layout.Document {
	doc := &layout.Document{
		Stroke: b.stroke,
		Layout: root.Raw(),
	}
	if len(b.defs) > 0 {
		doc.Defs = make(map[string]any, len(b.defs))
		for name, n := range b.defs {
			doc.Defs[name] = n.Raw()
		}
	}
	return doc
}
