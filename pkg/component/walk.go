package component

// Visitor receives each node of a tree together with its depth below the
// walk's root (the root itself is depth 0). Returning false stops the walk.
type Visitor func(n Node, depth int) bool

// Walk visits the tree rooted at root in depth-first pre-order, children in
// insertion order. Like render, it uses an explicit stack instead of call
// recursion.
func Walk(root Node, visit Visitor) {
	if root == nil || visit == nil {
		return
	}

	type item struct {
		n     Node
		depth int
	}
	stack := []item{{n: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(it.n, it.depth) {
			return
		}
		if c, ok := it.n.(*Container); ok {
			// Push in reverse so children pop in insertion order.
			for i := len(c.children) - 1; i >= 0; i-- {
				stack = append(stack, item{n: c.children[i], depth: it.depth + 1})
			}
		}
	}
}

// Count returns the number of nodes in the tree rooted at root, including
// the root itself.
func Count(root Node) int {
	n := 0
	Walk(root, func(Node, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the maximum depth of the tree rooted at root. A lone node
// has depth 0.
func Depth(root Node) int {
	max := 0
	Walk(root, func(_ Node, depth int) bool {
		if depth > max {
			max = depth
		}
		return true
	})
	return max
}
