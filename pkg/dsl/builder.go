package dsl

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/component"
)

// Branch accumulates children for one container level. Calls chain; the
// first error sticks and surfaces from Build, so construction code stays
// free of per-call error handling.
type Branch struct {
	c   *component.Container
	err error
}

// New starts a tree with an empty root container.
func New() *Branch {
	return &Branch{c: component.NewContainer()}
}

// Leaf appends a leaf with the given payload. An empty payload produces a
// default leaf (renders as "Leaf").
func (b *Branch) Leaf(payload string) *Branch {
	if b.err != nil {
		return b
	}
	var l *component.Leaf
	if payload == "" {
		l = component.NewLeaf()
	} else {
		l = component.NewLeaf(component.WithPayload(payload))
	}
	if err := b.c.Add(l); err != nil {
		b.err = fmt.Errorf("add leaf: %w", err)
	}
	return b
}

// Branch appends a nested container and hands it to fn for population.
func (b *Branch) Branch(fn func(*Branch)) *Branch {
	if b.err != nil {
		return b
	}
	child := &Branch{c: component.NewContainer()}
	if fn != nil {
		fn(child)
	}
	if child.err != nil {
		b.err = child.err
		return b
	}
	if err := b.c.Add(child.c); err != nil {
		b.err = fmt.Errorf("add branch: %w", err)
	}
	return b
}

// Node appends a pre-built node, re-parenting it if it already lives in
// another tree. Useful for grafting subtrees built elsewhere.
func (b *Branch) Node(n component.Node) *Branch {
	if b.err != nil {
		return b
	}
	if err := b.c.Add(n); err != nil {
		b.err = fmt.Errorf("add node: %w", err)
	}
	return b
}

// Build returns the assembled root container, or the first error recorded
// during construction.
func (b *Branch) Build() (*component.Container, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.c, nil
}
