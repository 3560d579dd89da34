package component

import (
	"errors"
	"testing"
)

func TestExecute_EmptyContainer(t *testing.T) {
	c := NewContainer()
	if got := c.Execute(); got != "Branch()" {
		t.Errorf("Expected 'Branch()', got %q", got)
	}
}

func TestExecute_SingleLeaf(t *testing.T) {
	l := NewLeaf()
	if got := l.Execute(); got != "Leaf" {
		t.Errorf("Expected 'Leaf', got %q", got)
	}
}

func TestExecute_LeafPayload(t *testing.T) {
	l := NewLeaf(WithPayload("disk"))
	if got := l.Execute(); got != "disk" {
		t.Errorf("Expected 'disk', got %q", got)
	}
	if l.Payload() != "disk" {
		t.Errorf("Expected payload 'disk', got %q", l.Payload())
	}
}

func TestExecute_FlatAggregation(t *testing.T) {
	c := NewContainer()
	for i := 0; i < 3; i++ {
		if err := c.Add(NewLeaf()); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if got := c.Execute(); got != "Branch(Leaf+Leaf+Leaf)" {
		t.Errorf("Expected 'Branch(Leaf+Leaf+Leaf)', got %q", got)
	}
}

func TestExecute_NestedAggregation(t *testing.T) {
	// T contains B1(Leaf, Leaf) and B2(Leaf).
	top := NewContainer()
	b1 := NewContainer()
	b2 := NewContainer()

	mustAdd(t, b1, NewLeaf())
	mustAdd(t, b1, NewLeaf())
	mustAdd(t, b2, NewLeaf())
	mustAdd(t, top, b1)
	mustAdd(t, top, b2)

	want := "Branch(Branch(Leaf+Leaf)+Branch(Leaf))"
	if got := top.Execute(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAdd_ParentConsistency(t *testing.T) {
	p := NewContainer()
	n := NewLeaf()

	if n.Parent() != nil {
		t.Fatal("Fresh leaf should have no parent")
	}

	mustAdd(t, p, n)
	if n.Parent() != p {
		t.Error("Expected parent to be set after Add")
	}

	p.Remove(n)
	if n.Parent() != nil {
		t.Error("Expected parent to be cleared after Remove")
	}
	if p.Len() != 0 {
		t.Errorf("Expected empty container, got %d children", p.Len())
	}
}

func TestAdd_Reparenting(t *testing.T) {
	p1 := NewContainer()
	p2 := NewContainer()
	n := NewLeaf()

	mustAdd(t, p1, n)
	mustAdd(t, p2, n)

	if p1.Len() != 0 {
		t.Errorf("Expected node detached from first parent, still has %d children", p1.Len())
	}
	count := 0
	for _, c := range p2.Children() {
		if c == Node(n) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected node exactly once under second parent, found %d", count)
	}
	if n.Parent() != p2 {
		t.Error("Expected parent reference to follow the re-parenting")
	}
}

func TestAdd_NilChild(t *testing.T) {
	c := NewContainer()
	if err := c.Add(nil); !errors.Is(err, ErrNilChild) {
		t.Errorf("Expected ErrNilChild, got %v", err)
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	c := NewContainer()
	a := NewLeaf(WithPayload("a"))
	b := NewLeaf(WithPayload("b"))
	d := NewLeaf(WithPayload("c"))
	mustAdd(t, c, a)
	mustAdd(t, c, b)
	mustAdd(t, c, d)

	c.Remove(b)

	kids := c.Children()
	if len(kids) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(kids))
	}
	if kids[0] != Node(a) || kids[1] != Node(d) {
		t.Errorf("Expected [a, c] order after removing middle child, got %q", c.Execute())
	}
}

func TestRemove_AbsentChildIsNoop(t *testing.T) {
	c := NewContainer()
	mustAdd(t, c, NewLeaf(WithPayload("a")))

	stranger := NewLeaf(WithPayload("b"))
	c.Remove(stranger)

	if c.Len() != 1 {
		t.Errorf("Expected container unchanged, got %d children", c.Len())
	}
	if got := c.Execute(); got != "Branch(a)" {
		t.Errorf("Expected 'Branch(a)', got %q", got)
	}
}

func TestAdd_RejectsCycles(t *testing.T) {
	t.Run("Self", func(t *testing.T) {
		c := NewContainer()
		if err := c.Add(c); !errors.Is(err, ErrCycleDetected) {
			t.Errorf("Expected ErrCycleDetected, got %v", err)
		}
		if c.Len() != 0 {
			t.Error("Expected tree unchanged after rejected Add")
		}
	})

	t.Run("Descendant", func(t *testing.T) {
		root := NewContainer()
		mid := NewContainer()
		deep := NewContainer()
		mustAdd(t, root, mid)
		mustAdd(t, mid, deep)

		// Closing root under its own grandchild must fail.
		if err := deep.Add(root); !errors.Is(err, ErrCycleDetected) {
			t.Errorf("Expected ErrCycleDetected, got %v", err)
		}

		if deep.Len() != 0 {
			t.Error("Expected deep container unchanged")
		}
		if root.Parent() != nil {
			t.Error("Expected root to stay detached after rejected Add")
		}
		if got := root.Execute(); got != "Branch(Branch(Branch()))" {
			t.Errorf("Tree shape changed after rejected Add: %q", got)
		}
	})
}

func TestAdd_MoveToEndOnReadd(t *testing.T) {
	c := NewContainer()
	a := NewLeaf(WithPayload("a"))
	b := NewLeaf(WithPayload("b"))
	mustAdd(t, c, a)
	mustAdd(t, c, b)

	mustAdd(t, c, a)

	if got := c.Execute(); got != "Branch(b+a)" {
		t.Errorf("Expected re-added child at the end, got %q", got)
	}
	if c.Len() != 2 {
		t.Errorf("Expected single occurrence, got %d children", c.Len())
	}
}

func TestIsContainer(t *testing.T) {
	if NewLeaf().IsContainer() {
		t.Error("Leaf must not report as container")
	}
	if !NewContainer().IsContainer() {
		t.Error("Container must report as container")
	}
}

func mustAdd(t *testing.T, c *Container, n Node) {
	t.Helper()
	if err := c.Add(n); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
}
