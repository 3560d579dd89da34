package component

// Container is the aggregating node variant. It owns an ordered collection
// of child nodes; insertion order determines aggregation order and is
// preserved across Add and Remove.
//
// A container is not internally synchronized. Callers that mutate a tree
// while rendering it (or mutate the same container from multiple
// goroutines) must serialize access themselves.
type Container struct {
	children []Node
	parent   *Container
}

// NewContainer creates an empty, detached container.
func NewContainer() *Container {
	return &Container{}
}

// Add appends child to the container's children and points the child's
// parent reference back at the container.
//
// A child that already lives under another container is detached from it
// first, so a node is owned by at most one container at a time and no stale
// parent pointer survives a re-parenting. Re-adding a node to its current
// parent moves it to the end of the child list.
//
// Add rejects mutations that would make the container reachable from
// itself with ErrCycleDetected, leaving the tree unchanged.
func (c *Container) Add(child Node) error {
	if child == nil {
		return ErrNilChild
	}
	if cc, ok := child.(*Container); ok {
		// Walk our ancestor chain; finding the candidate child there
		// (or being it ourselves) means the edge would close a loop.
		for n := c; n != nil; n = n.parent {
			if n == cc {
				return ErrCycleDetected
			}
		}
	}
	if p := child.Parent(); p != nil {
		p.Remove(child)
	}
	c.children = append(c.children, child)
	child.setParent(c)
	return nil
}

// Remove deletes the first occurrence of child from the container's
// children and clears the child's parent reference. The relative order of
// the remaining children is preserved. Removing a node that is not present
// is a no-op.
func (c *Container) Remove(child Node) {
	for i, n := range c.children {
		if n == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.setParent(nil)
			return
		}
	}
}

// Children returns a copy of the child list in insertion order. Mutating
// the returned slice does not affect the container.
func (c *Container) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of direct children.
func (c *Container) Len() int { return len(c.children) }

// IsContainer reports true.
func (c *Container) IsContainer() bool { return true }

// Parent returns the container that currently owns this one, or nil.
func (c *Container) Parent() *Container { return c.parent }

// Execute folds the children's results in insertion order into the
// aggregate form Branch(a+b+...). An empty container renders as Branch().
func (c *Container) Execute() string {
	return render(c)
}

func (c *Container) setParent(p *Container) { c.parent = p }
