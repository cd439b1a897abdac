package network

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndex(t *testing.T) {
	r1 := &Router{ModelName: "r1", Capacity: 10}
	r2 := &Router{ModelName: "r2", Capacity: 20}
	r1bis := &Router{ModelName: "r1", Capacity: 30}

	idx := IndexRouters([]*Router{r1, r2, r1bis})

	if got := idx.Len(); got != 2 {
		t.Errorf("Len(): want 2, got %d", got)
	}
	if got, ok := idx.Lookup("r1"); !ok || got != r1 {
		t.Errorf("Lookup(r1): want first router, got %+v (ok=%t)", got, ok)
	}
	if got, ok := idx.Lookup("r3"); ok || got != nil {
		t.Errorf("Lookup(r3): want (nil, false), got (%+v, %t)", got, ok)
	}
	if got := idx.Position("r2"); got != 1 {
		t.Errorf("Position(r2): want 1, got %d", got)
	}
	if got := idx.Position("r3"); got != -1 {
		t.Errorf("Position(r3): want -1, got %d", got)
	}
	if diff := cmp.Diff([]*Router{r1, r2}, idx.Items()); diff != "" {
		t.Errorf("Items(): mismatch (-want +got):\n%s", diff)
	}
}

func TestIndex_Add(t *testing.T) {
	idx := NewIndex(func(c *Cable) string { return c.Name })

	if !idx.Add(&Cable{Name: "fiber"}) {
		t.Errorf("Add(fiber): want true, got false")
	}
	if idx.Add(&Cable{Name: "fiber"}) {
		t.Errorf("Add(fiber) twice: want false, got true")
	}
}

func TestIndexNodesAndCables(t *testing.T) {
	nodes := IndexNodes(newNodes("a", "b"))
	cables := IndexCables([]*Cable{{Name: "fiber"}, {Name: "copper"}})

	if _, ok := nodes.Lookup("b"); !ok {
		t.Errorf("IndexNodes(): want node b")
	}
	if got := cables.Position("copper"); got != 1 {
		t.Errorf("IndexCables(): want copper at 1, got %d", got)
	}
}
