package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/canopy/pkg/component"
)

// Decode parses a YAML tree definition and builds the component tree it
// describes. JSON bodies decode too, since YAML is a superset.
func Decode(data []byte) (component.Node, error) {
	var spec NodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse tree definition: %w", err)
	}
	return Build(spec)
}

// Build converts a NodeSpec into a live component tree.
//
// Construction is breadth-first with an explicit queue. Each parent's
// children are enqueued in definition order and attached in dequeue order,
// so sibling order in the definition is sibling order in the tree.
func Build(spec NodeSpec) (component.Node, error) {
	if spec.Kind == KindLeaf {
		if len(spec.Children) > 0 {
			return nil, fmt.Errorf("node %q: leaf cannot have children", specName(spec))
		}
		return newLeaf(spec), nil
	}
	if spec.Kind != KindBranch {
		return nil, fmt.Errorf("node %q: unknown kind %q", specName(spec), spec.Kind)
	}

	root := component.NewContainer()

	type item struct {
		spec   NodeSpec
		parent *component.Container
	}
	queue := make([]item, 0, len(spec.Children))
	for _, child := range spec.Children {
		queue = append(queue, item{spec: child, parent: root})
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		switch it.spec.Kind {
		case KindLeaf:
			if len(it.spec.Children) > 0 {
				return nil, fmt.Errorf("node %q: leaf cannot have children", specName(it.spec))
			}
			if err := it.parent.Add(newLeaf(it.spec)); err != nil {
				return nil, fmt.Errorf("attach leaf %q: %w", specName(it.spec), err)
			}
		case KindBranch:
			c := component.NewContainer()
			if err := it.parent.Add(c); err != nil {
				return nil, fmt.Errorf("attach branch %q: %w", specName(it.spec), err)
			}
			for _, child := range it.spec.Children {
				queue = append(queue, item{spec: child, parent: c})
			}
		default:
			return nil, fmt.Errorf("node %q: unknown kind %q", specName(it.spec), it.spec.Kind)
		}
	}

	return root, nil
}

// Encode serializes a component tree back to its YAML definition.
func Encode(root component.Node) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("encode: nil root")
	}
	data, err := yaml.Marshal(FromNode(root))
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return data, nil
}

// FromNode converts a live component tree into its NodeSpec form.
func FromNode(root component.Node) NodeSpec {
	c, ok := root.(*component.Container)
	if !ok {
		spec := NodeSpec{Kind: KindLeaf}
		if l, ok := root.(*component.Leaf); ok {
			spec.Payload = l.Payload()
		}
		return spec
	}

	spec := NodeSpec{Kind: KindBranch}
	for _, child := range c.Children() {
		spec.Children = append(spec.Children, FromNode(child))
	}
	return spec
}

func newLeaf(spec NodeSpec) *component.Leaf {
	if spec.Payload == "" {
		return component.NewLeaf()
	}
	return component.NewLeaf(component.WithPayload(spec.Payload))
}

func specName(spec NodeSpec) string {
	var meta struct {
		Name string `mapstructure:"name"`
	}
	if err := spec.DecodeMeta(&meta); err == nil && meta.Name != "" {
		return meta.Name
	}
	if spec.Payload != "" {
		return spec.Payload
	}
	return spec.Kind
}
