package component

import (
	"strings"
	"testing"
)

func TestRender_DeepChain(t *testing.T) {
	// A pure parent chain far deeper than any realistic tree. The
	// renderer must not consume call stack proportional to depth.
	const depth = 10_000

	root := NewContainer()
	cur := root
	for i := 0; i < depth; i++ {
		next := NewContainer()
		mustAdd(t, cur, next)
		cur = next
	}
	mustAdd(t, cur, NewLeaf())

	got := root.Execute()
	want := strings.Repeat("Branch(", depth+1) + "Leaf" + strings.Repeat(")", depth+1)
	if got != want {
		t.Errorf("Deep chain render mismatch (len %d vs %d)", len(got), len(want))
	}
}

func TestRender_WideContainer(t *testing.T) {
	c := NewContainer()
	for i := 0; i < 1000; i++ {
		mustAdd(t, c, NewLeaf())
	}

	got := c.Execute()
	if !strings.HasPrefix(got, "Branch(Leaf+") || !strings.HasSuffix(got, "+Leaf)") {
		t.Errorf("Unexpected shape: %.40s...", got)
	}
	if n := strings.Count(got, separator); n != 999 {
		t.Errorf("Expected 999 separators, got %d", n)
	}
}

func TestExecuteParallel_MatchesSequential(t *testing.T) {
	root := NewContainer()
	for i := 0; i < 8; i++ {
		sub := NewContainer()
		mustAdd(t, sub, NewLeaf(WithPayload(string(rune('a'+i)))))
		mustAdd(t, sub, NewLeaf())
		mustAdd(t, root, sub)
	}

	want := root.Execute()
	for _, workers := range []int{2, 4, 16} {
		if got := ExecuteParallel(root, workers); got != want {
			t.Errorf("workers=%d: expected %q, got %q", workers, want, got)
		}
	}
}

func TestExecuteParallel_FallsBack(t *testing.T) {
	if got := ExecuteParallel(NewLeaf(), 8); got != "Leaf" {
		t.Errorf("Expected leaf fallback 'Leaf', got %q", got)
	}
	c := NewContainer()
	mustAdd(t, c, NewLeaf())
	if got := ExecuteParallel(c, 1); got != "Branch(Leaf)" {
		t.Errorf("Expected sequential fallback, got %q", got)
	}
}

func TestWalk_PreOrder(t *testing.T) {
	root := NewContainer()
	b1 := NewContainer()
	mustAdd(t, b1, NewLeaf(WithPayload("x")))
	mustAdd(t, b1, NewLeaf(WithPayload("y")))
	mustAdd(t, root, b1)
	mustAdd(t, root, NewLeaf(WithPayload("z")))

	var order []string
	Walk(root, func(n Node, depth int) bool {
		if n.IsContainer() {
			order = append(order, "B")
		} else {
			order = append(order, n.Execute())
		}
		return true
	})

	want := "B B x y z"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("Expected pre-order %q, got %q", want, got)
	}

	if Count(root) != 5 {
		t.Errorf("Expected 5 nodes, got %d", Count(root))
	}
	if Depth(root) != 2 {
		t.Errorf("Expected depth 2, got %d", Depth(root))
	}
}

func TestWalk_EarlyStop(t *testing.T) {
	root := NewContainer()
	mustAdd(t, root, NewLeaf())
	mustAdd(t, root, NewLeaf())

	visited := 0
	Walk(root, func(Node, int) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("Expected walk to stop after 2 visits, got %d", visited)
	}
}
