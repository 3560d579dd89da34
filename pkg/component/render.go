package component

import (
	"strings"
	"sync"
)

// separator joins sibling results inside an aggregate. There is never a
// trailing separator after the last element.
const separator = "+"

func wrap(parts []string) string {
	return "Branch(" + strings.Join(parts, separator) + ")"
}

// render performs an iterative post-order fold over the tree rooted at c.
// An explicit frame stack keeps memory proportional to tree depth without
// consuming goroutine stack, so pathologically deep trees render fine.
func render(root *Container) string {
	type frame struct {
		c     *Container
		next  int
		parts []string
	}

	stack := []frame{{c: root, parts: make([]string, 0, len(root.children))}}
	for {
		f := &stack[len(stack)-1]

		if f.next < len(f.c.children) {
			child := f.c.children[f.next]
			f.next++
			if cc, ok := child.(*Container); ok {
				stack = append(stack, frame{c: cc, parts: make([]string, 0, len(cc.children))})
				continue
			}
			f.parts = append(f.parts, child.Execute())
			continue
		}

		done := wrap(f.parts)
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return done
		}
		top := &stack[len(stack)-1]
		top.parts = append(top.parts, done)
	}
}

// ExecuteParallel renders root like Node.Execute but evaluates the root's
// direct subtrees on up to workers goroutines. Sibling subtrees share no
// state during a fold, so they can run concurrently; results are re-joined
// in insertion order, which keeps the output byte-identical to the
// sequential render.
//
// The tree must not be mutated while ExecuteParallel runs. workers < 2
// falls back to the sequential render.
func ExecuteParallel(root Node, workers int) string {
	c, ok := root.(*Container)
	if !ok || workers < 2 {
		return root.Execute()
	}

	parts := make([]string, len(c.children))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, child := range c.children {
		wg.Add(1)
		go func(i int, child Node) {
			defer wg.Done()
			sem <- struct{}{}
			parts[i] = child.Execute()
			<-sem
		}(i, child)
	}
	wg.Wait()

	return wrap(parts)
}
