package tessera_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/tessera"
	"github.com/aretw0/tessera/pkg/adapters/memory"
	"github.com/aretw0/tessera/pkg/layout"
)

// ExampleEngine_Render renders a YAML layout document to plain text.
func ExampleEngine_Render() {
	eng := tessera.New()

	doc := []byte(`
stroke: rounded
layout:
  kind: frame
  title: hi
  child:
    kind: join
    gap: 1
    children: ["ab\ncd", X]
`)
	out, err := eng.Render(context.Background(), doc, layout.YAML)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// ╭ hi ╮
	// │ab X│
	// │cd  │
	// ╰────╯
}

// ExampleWithCache shows that a cached engine compiles a document once.
func ExampleWithCache() {
	eng := tessera.New(
		tessera.WithCache(memory.NewCache()),
		tessera.WithHooks(tessera.Hooks{
			OnRender: func(_ context.Context, ev tessera.RenderEvent) {
				fmt.Println("cached:", ev.Cached)
			},
		}),
	)

	doc := []byte(`{"layout": {"kind": "divider", "length": 7, "label": "ok"}}`)
	for range 2 {
		out, err := eng.Render(context.Background(), doc, layout.JSON)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(out)
	}
	// Output:
	// cached: false
	// ─ ok ──
	// cached: true
	// ─ ok ──
}
