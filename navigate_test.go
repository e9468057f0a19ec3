package rowan

import "testing"

func TestClosestAncestorInclusive(t *testing.T) {
	_, chain := buildChain(t, 3)
	chain[2].flags.Set(FlagInvalidMatrix)

	// The search starts at the node itself.
	got := closestAncestorWithFlags(chain[2], FlagInvalidMatrix, true)
	if got != chain[2] {
		t.Errorf("closest = %v, want the starting node", got)
	}
}

func TestClosestAncestorWalksUp(t *testing.T) {
	_, chain := buildChain(t, 4)
	chain[0].flags.Set(FlagInvalidBounds)
	chain[1].flags.Set(FlagInvalidBounds)

	got := closestAncestorWithFlags(chain[3], FlagInvalidBounds, true)
	if got != chain[1] {
		t.Errorf("closest = %q, want chain[1]", got.Name)
	}
}

func TestClosestAncestorNoMatch(t *testing.T) {
	_, chain := buildChain(t, 3)
	if got := closestAncestorWithFlags(chain[2], FlagDestroyed, true); got != nil {
		t.Errorf("closest = %q, want nil", got.Name)
	}
}

func TestFurthestAncestorReturnsOutermost(t *testing.T) {
	_, chain := buildChain(t, 4)
	chain[1].flags.Set(FlagInvalidBounds)
	chain[3].flags.Set(FlagInvalidBounds)

	got := furthestAncestorWithFlags(chain[3], FlagInvalidBounds, true)
	if got != chain[1] {
		t.Errorf("furthest = %q, want chain[1]", got.Name)
	}
}

func TestIsAncestor(t *testing.T) {
	s, chain := buildChain(t, 3)
	if !isAncestor(s.Root(), chain[2]) {
		t.Error("root should be an ancestor of the leaf")
	}
	if !isAncestor(chain[2], chain[2]) {
		t.Error("a node is its own ancestor for cycle checks")
	}
	if isAncestor(chain[2], chain[0]) {
		t.Error("a descendant is not an ancestor")
	}
}

func TestAncestorPathOrderAndBounds(t *testing.T) {
	s, chain := buildChain(t, 3)

	path := ancestorPath(chain[2], chain[0])
	if len(path) != 2 || path[0] != chain[2] || path[1] != chain[1] {
		t.Fatalf("path = %v, want [chain[2] chain[1]]", path)
	}

	// nil stop extends the path through the root.
	path = ancestorPath(chain[2], nil)
	if len(path) != 4 || path[3] != s.Root() {
		t.Fatalf("path to nil = %d nodes, want 4 ending at root", len(path))
	}
}

func TestAncestorPathNonAncestorPanics(t *testing.T) {
	s := NewScene()
	a := s.NewContainer("a")
	b := s.NewContainer("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a stop node that is not an ancestor")
		}
	}()
	ancestorPath(a, b)
}
