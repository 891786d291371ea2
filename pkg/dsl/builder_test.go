package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tessera/pkg/layout"
)

func compile(t *testing.T, doc *layout.Document) string {
	t.Helper()
	b, err := layout.Compile(doc)
	require.NoError(t, err)
	return b.Render()
}

func TestBuilder_Frame(t *testing.T) {
	doc := New().
		Stroke("rounded").
		Build(Frame(Row(Text("ab\ncd"), Text("X")).Gap(1)).Title("hi"))

	assert.Equal(t, "╭ hi ╮\n│ab X│\n│cd  │\n╰────╯\n", compile(t, doc))
}

func TestBuilder_Refs(t *testing.T) {
	doc := New().
		Def("dot", Text(".")).
		Build(Column(Ref("dot"), Ref("dot"), Divider(5, "")))

	assert.Equal(t, ".\n.\n─────\n", compile(t, doc))
}

func TestBuilder_Shapes(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"fill", Fill(3, 2, "*"), "***\n***\n"},
		{"line", Line("vertical", 2).Stroke("double"), "║\n║\n"},
		{"overlay", Overlay(Text("a c"), Fill(3, 1, ".")), "a.c\n"},
		{"pad", Pad(Text("x")).Sides(1, 0, 1, 0), "\n x\n"},
		{"pad to size", Pad(Text("x")).Size(3, 1).Toward("left", "bottom"), "  x\n"},
		{"aligned row", Row(Text("a\nb"), Text("X")).At("bottom"), "a\nbX\n"},
		{"wrapped text", Text("abcdef").Wrap(3).Align("right"), "abc\ndef\n"},
		{"back decider", Overlay(Text("a"), Text("b")).Decider("back"), "b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compile(t, New().Build(tt.node)))
		})
	}
}

func TestBuilder_ErrorsSurface(t *testing.T) {
	doc := New().Build(Row(Text("x").Gap(2)))
	_, err := layout.Compile(doc)
	require.Error(t, err)
	nodes := layout.NodeErrors(err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "layout.children[0]", nodes[0].Path)
}

func TestBuilder_MatchesYAML(t *testing.T) {
	doc := New().Stroke("ascii").Build(Frame(Text("hi").Style("bold")))

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	parsed, err := layout.Parse(data, layout.YAML)
	require.NoError(t, err)

	assert.Equal(t, compile(t, doc), compile(t, parsed))
	assert.Equal(t, "+--+\n|hi|\n+--+\n", compile(t, parsed))
}
