package canopy_test

import (
	"fmt"
	"log"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/component"
	"github.com/aretw0/canopy/pkg/dsl"
)

// ExampleNew demonstrates manual tree assembly with the component core.
// The client works with both simple and complex nodes through the same
// Execute contract.
func ExampleNew() {
	simple := component.NewLeaf()
	fmt.Println(simple.Execute())

	branch1 := component.NewContainer()
	branch2 := component.NewContainer()
	top := component.NewContainer()

	for _, step := range []struct {
		parent *component.Container
		child  component.Node
	}{
		{branch1, component.NewLeaf()},
		{branch1, component.NewLeaf()},
		{branch2, component.NewLeaf()},
		{top, branch1},
		{top, branch2},
	} {
		if err := step.parent.Add(step.child); err != nil {
			log.Fatal(err)
		}
	}

	tree, err := canopy.New(top)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tree.Render())

	// Output:
	// Leaf
	// Branch(Branch(Leaf+Leaf)+Branch(Leaf))
}

// ExampleNew_dsl builds the same structure with the fluent builder.
func ExampleNew_dsl() {
	root, err := dsl.New().
		Branch(func(b *dsl.Branch) {
			b.Leaf("").Leaf("")
		}).
		Branch(func(b *dsl.Branch) {
			b.Leaf("")
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

	// Output:
	// Branch(Branch(Leaf+Leaf)+Branch(Leaf))
}
