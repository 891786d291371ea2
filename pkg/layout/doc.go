// Package layout compiles YAML or JSON layout documents into styled blocks.
//
// A document names a tree of nodes under "layout". A node is either a plain
// string (a text block) or a map with a "kind":
//
//	text      text, wrap, align (left, right, center), style
//	fill      width, height, with, style
//	line      axis, length, stroke, style
//	divider   length, label, stroke, style
//	frame     child, title, stroke, style
//	join      children, axis, at, gap
//	overlay   children (front first), decider
//	pad       child, left, right, top, bottom, width, height, horizontal, vertical
//	markdown  source, width, style
//	ref       ref (the name of an entry under "defs")
//
// Styles are either description strings ("bold fg=#ff8800") or maps of the
// fields of style.Termenv. Compile reports every problem it finds, each as a
// NodeError carrying the path of the offending node.
package layout
