package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/tessera/pkg/layout"
)

// GraphOverlay contains diagnostics to visualize on the graph.
type GraphOverlay struct {
	ErrorPaths []string
}

// OverlayFromError marks the nodes reported by a compile error.
func OverlayFromError(err error) *GraphOverlay {
	nodes := layout.NodeErrors(err)
	if len(nodes) == 0 {
		return nil
	}
	o := &GraphOverlay{}
	for _, n := range nodes {
		o.ErrorPaths = append(o.ErrorPaths, n.Path)
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the node tree of doc.
// It applies semantic styling:
// - Root: ((Circle))
// - Join/Overlay: [[Subroutine]]
// - Frame/Pad: [/Parallelogram/]
// - Ref: {{Hexagon}}, with a dotted edge to its definition
// - Default: [Rectangle]
// It also marks the nodes named by overlay, if provided.
func GenerateMermaid(doc *layout.Document, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	w := &walker{sb: &sb}
	w.node("layout", doc.Layout, true)

	names := make([]string, 0, len(doc.Defs))
	for name := range doc.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		w.node("defs."+name, doc.Defs[name], false)
	}

	// Apply Overlay Styles
	if overlay != nil && len(overlay.ErrorPaths) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef failed fill:#ffcdd2,stroke:#b71c1c,stroke-width:3px,color:#000;\n")

		seen := make(map[string]bool)
		for _, path := range overlay.ErrorPaths {
			// Errors on a field (layout.at) belong to the node that owns it.
			safeID := sanitizeMermaidID(owner(path, w.ids))
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s failed;\n", safeID))
			}
		}
	}

	return sb.String()
}

type walker struct {
	sb  *strings.Builder
	ids map[string]bool
}

func (w *walker) node(path string, raw any, root bool) {
	if w.ids == nil {
		w.ids = make(map[string]bool)
	}
	w.ids[path] = true
	safeID := sanitizeMermaidID(path)

	kind, label := describe(raw)
	opener, closer := "[", "]"
	switch {
	case root:
		opener, closer = "((", "))" // Circle
	case kind == "join" || kind == "overlay":
		opener, closer = "[[", "]]" // Subroutine
	case kind == "frame" || kind == "pad":
		opener, closer = "[/", "/]" // Parallelogram
	case kind == "ref":
		opener, closer = "{{", "}}" // Hexagon
	}
	w.sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

	fields, ok := raw.(map[string]any)
	if !ok {
		return
	}
	if name, ok := fields["ref"].(string); ok {
		w.sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", safeID, sanitizeMermaidID("defs."+name)))
	}
	if child, ok := fields["child"]; ok {
		childPath := path + ".child"
		w.sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(childPath)))
		w.node(childPath, child, false)
	}
	if children, ok := fields["children"].([]any); ok {
		for i, child := range children {
			childPath := fmt.Sprintf("%s.children[%d]", path, i)
			w.sb.WriteString(fmt.Sprintf("    %s -- \"%d\" --> %s\n", safeID, i, sanitizeMermaidID(childPath)))
			w.node(childPath, child, false)
		}
	}
}

// describe returns the kind of a raw node and a short label for it.
func describe(raw any) (string, string) {
	switch v := raw.(type) {
	case string:
		return "text", quote(v)
	case map[string]any:
		kind, _ := v["kind"].(string)
		if _, ok := v["ref"]; ok && kind == "" {
			kind = "ref"
		}
		if kind == "" {
			kind = "?"
		}
		var detail string
		switch kind {
		case "text":
			detail, _ = v["text"].(string)
		case "frame":
			detail, _ = v["title"].(string)
		case "divider":
			detail, _ = v["label"].(string)
		case "join", "line":
			detail, _ = v["axis"].(string)
		case "ref":
			detail, _ = v["ref"].(string)
		}
		if detail == "" {
			return kind, kind
		}
		return kind, kind + ": " + quote(detail)
	}
	return "?", "?"
}

// quote shortens s to one line fit for a Mermaid label.
func quote(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", "⏎")
	if r := []rune(s); len(r) > 24 {
		s = string(r[:23]) + "…"
	}
	return s
}

// owner strips field suffixes from path until it names a drawn node.
func owner(path string, ids map[string]bool) string {
	for path != "" && !ids[path] {
		i := strings.LastIndexByte(path, '.')
		if i < 0 {
			return path
		}
		path = path[:i]
	}
	return path
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", "[", "_", "]", "", " ", "_")
	return r.Replace(id)
}
