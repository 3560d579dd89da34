package canopy

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/pkg/component"
)

// Version of the canopy library.
const Version = "0.3.0"

// Hooks carries optional observability callbacks fired by the facade.
// Nil members are skipped.
type Hooks struct {
	// OnNodeVisit fires for every node during Inspect and Stats walks.
	OnNodeVisit func(n component.Node, depth int)
	// OnRender fires after each Render with the produced aggregate and
	// the wall time it took.
	OnRender func(result string, elapsed time.Duration)
}

// Tree is the high-level entry point for the Canopy library. It wraps a
// component tree root and provides rendering, uniform mutation, and
// inspection on top of the pkg/component core.
type Tree struct {
	root    component.Node
	logger  *slog.Logger
	hooks   Hooks
	workers int
}

// Option defines a functional option for configuring a Tree.
type Option func(*Tree)

// WithLogger sets a custom structured logger. The default discards logs.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(t *Tree) {
		t.hooks = hooks
	}
}

// WithParallelism lets Render evaluate the root's direct subtrees on up to
// n goroutines. Results are re-joined in insertion order, so the output is
// identical to the sequential render. Values below 2 keep rendering
// sequential.
func WithParallelism(n int) Option {
	return func(t *Tree) {
		t.workers = n
	}
}

// New wraps an existing root node. The root may be a lone leaf; a
// single-node tree is still a tree.
func New(root component.Node, opts ...Option) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("root node is required")
	}
	t := &Tree{
		root:   root,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Root returns the wrapped root node.
func (t *Tree) Root() component.Node {
	return t.root
}

// Render produces the tree's aggregate string.
func (t *Tree) Render() string {
	start := time.Now()

	var result string
	if t.workers > 1 {
		result = component.ExecuteParallel(t.root, t.workers)
	} else {
		result = t.root.Execute()
	}

	elapsed := time.Since(start)
	t.logger.Debug("render complete", "took", elapsed, "bytes", len(result))
	if t.hooks.OnRender != nil {
		t.hooks.OnRender(result, elapsed)
	}
	return result
}

// Attach adds child under parent. It is the uniform entry point promised
// by the component contract: any node can be passed as parent, but leaves
// are rejected with ErrNotContainer instead of silently ignoring the call.
func (t *Tree) Attach(parent, child component.Node) error {
	c, ok := parent.(*component.Container)
	if !ok {
		t.logger.Warn("attach rejected", "reason", "parent is a leaf")
		return component.ErrNotContainer
	}
	if err := c.Add(child); err != nil {
		return err
	}
	t.logger.Debug("node attached", "parent_children", c.Len())
	return nil
}

// Detach removes child from parent. Removing an absent child is a no-op;
// only a leaf parent is an error.
func (t *Tree) Detach(parent, child component.Node) error {
	c, ok := parent.(*component.Container)
	if !ok {
		return component.ErrNotContainer
	}
	c.Remove(child)
	return nil
}

// Stats summarizes the current tree shape.
type Stats struct {
	Nodes    int `json:"nodes"`
	Leaves   int `json:"leaves"`
	Branches int `json:"branches"`
	Depth    int `json:"depth"`
}

// Stats walks the tree and returns shape counters. The walk fires
// OnNodeVisit hooks.
func (t *Tree) Stats() Stats {
	var s Stats
	component.Walk(t.root, func(n component.Node, depth int) bool {
		s.Nodes++
		if n.IsContainer() {
			s.Branches++
		} else {
			s.Leaves++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		if t.hooks.OnNodeVisit != nil {
			t.hooks.OnNodeVisit(n, depth)
		}
		return true
	})
	return s
}

// Inspect returns every node in depth-first pre-order. The walk fires
// OnNodeVisit hooks.
func (t *Tree) Inspect() []component.Node {
	var nodes []component.Node
	component.Walk(t.root, func(n component.Node, depth int) bool {
		nodes = append(nodes, n)
		if t.hooks.OnNodeVisit != nil {
			t.hooks.OnNodeVisit(n, depth)
		}
		return true
	})
	return nodes
}
