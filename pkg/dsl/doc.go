/*
Package dsl provides a Go DSL for building Tessera layout documents.

It produces the same documents as YAML or JSON files, through a fluent builder
instead of nested maps. This is useful for generating layouts from code while
keeping one compiler and one set of error messages.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/tessera/pkg/dsl"
		"github.com/aretw0/tessera/pkg/layout"
	)

	func main() {
		doc := dsl.New().
			Stroke("rounded").
			Def("dot", dsl.Text("•").Style("fg=2")).
			Build(dsl.Frame(
				dsl.Row(dsl.Ref("dot"), dsl.Text("ready")).Gap(1),
			).Title("status"))

		b, err := layout.Compile(doc)
		if err != nil {
			panic(err)
		}
		fmt.Print(b)
	}
*/
package dsl
