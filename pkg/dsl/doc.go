/*
Package dsl provides a fluent builder for constructing Canopy component
trees in Go code, as an alternative to the YAML definition format in
pkg/codec. It is particularly handy in tests and in programs that generate
tree shapes dynamically.

Example usage:

	root, err := dsl.New().
		Leaf("cpu").
		Branch(func(b *dsl.Branch) {
			b.Leaf("ssd").Leaf("hdd")
		}).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(root.Execute())
	// Branch(cpu+Branch(ssd+hdd))
*/
package dsl
