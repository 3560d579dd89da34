package component

// Node is the common contract satisfied by every tree member.
//
// The variant set is closed: only Leaf and Container implement it. The
// unexported setParent method seals the interface and keeps parent
// bookkeeping inside Container mutation, so client code can never leave a
// stale back-reference behind.
type Node interface {
	// Execute returns the node's rendered contribution. It never mutates
	// the tree, so repeated calls on an unchanged tree yield the same
	// result.
	Execute() string

	// IsContainer reports whether the node can hold children.
	IsContainer() bool

	// Parent returns the container that currently owns the node, or nil
	// for a detached node. The reference is navigational only; it does not
	// keep the parent alive.
	Parent() *Container

	setParent(p *Container)
}
