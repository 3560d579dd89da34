/*
Package canopy is a small library for composing objects into trees and
working with those trees as if they were individual objects.

A tree is built from two node variants: a Leaf performs the terminal unit
of work, and a Container owns an ordered collection of child nodes and
aggregates their results. Both satisfy the same Execute contract, so client
code renders a lone leaf and a deeply nested hierarchy the same way. The
structural rules (acyclicity, single ownership, consistent parent
references, stable child order) are maintained by the component core in
pkg/component; this package layers a convenience facade, structured
logging, observability hooks, and optional parallel rendering on top.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/canopy"
		"github.com/aretw0/canopy/pkg/dsl"
	)

	func main() {
		root, err := dsl.New().
			Leaf("cpu").
			Branch(func(b *dsl.Branch) {
				b.Leaf("ssd").Leaf("hdd")
			}).
			Build()
		if err != nil {
			log.Fatal(err)
		}

		tree, err := canopy.New(root)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(tree.Render())
		// Branch(cpu+Branch(ssd+hdd))
	}

Trees can also be described in YAML (pkg/codec), served over HTTP
(pkg/adapters/http), or driven from the command line (cmd/canopy).
*/
package canopy
