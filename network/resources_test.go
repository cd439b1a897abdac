package network

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindMinCable(t *testing.T) {
	c500 := &Cable{Name: "c500", Capacity: 500, CostPerUnit: 2.0}
	c1000 := &Cable{Name: "c1000", Capacity: 1000, CostPerUnit: 1.0}
	c2000 := &Cable{Name: "c2000", Capacity: 2000, CostPerUnit: 5.0}
	c1000bis := &Cable{Name: "c1000-bis", Capacity: 1000, CostPerUnit: 1.0}
	catalog := []*Cable{c500, c1000, c2000}

	testCases := []struct {
		desc    string
		cables  []*Cable
		demands *DemandSet
		want    *Cable
	}{
		{
			desc:    "cheapest among feasible cables",
			cables:  catalog,
			demands: newDemands(demand("a", "b", 400, 0), demand("b", "c", 200, 0)),
			want:    c1000,
		},
		{
			desc:    "total traffic exceeds every capacity",
			cables:  catalog,
			demands: newDemands(demand("a", "b", 2001, 0)),
			want:    nil,
		},
		{
			desc:    "capacity equal to traffic is feasible",
			cables:  catalog,
			demands: newDemands(demand("a", "b", 2000, 0)),
			want:    c2000,
		},
		{
			desc:    "empty catalog",
			demands: newDemands(demand("a", "b", 1, 0)),
			want:    nil,
		},
		{
			desc:    "ties keep the first cable",
			cables:  []*Cable{c2000, c1000, c1000bis},
			demands: newDemands(demand("a", "b", 10, 0)),
			want:    c1000,
		},
		{
			desc:    "demands with unknown endpoints count",
			cables:  catalog,
			demands: newDemands(demand("ghost", "b", 300, 0), demand("a", "ghost", 300, 0)),
			want:    c1000,
		},
		{
			desc:    "no demand",
			cables:  catalog,
			demands: NewDemandSet(),
			want:    c1000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := FindMinCable(tc.cables, tc.demands)

			if got != tc.want {
				t.Errorf("FindMinCable(): want %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestFindMinRouter(t *testing.T) {
	small := &Router{ModelName: "small", Capacity: 100, Cost: 10}
	large := &Router{ModelName: "large", Capacity: 1000, Cost: 80}
	huge := &Router{ModelName: "huge", Capacity: 5000, Cost: 70}
	routers := []*Router{small, large, huge}

	testCases := []struct {
		desc    string
		demands *DemandSet
		want    *Router
	}{
		{"small traffic", newDemands(demand("a", "b", 50, 0)), small},
		{"cheaper larger router", newDemands(demand("a", "b", 500, 0)), huge},
		{"infeasible", newDemands(demand("a", "b", 6000, 0)), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := FindMinRouter(routers, tc.demands)

			if got != tc.want {
				t.Errorf("FindMinRouter(): want %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestFindMinRouterPerNode(t *testing.T) {
	small := &Router{ModelName: "small", Capacity: 100, Cost: 10}
	medium := &Router{ModelName: "medium", Capacity: 500, Cost: 40}
	mediumBis := &Router{ModelName: "medium-bis", Capacity: 500, Cost: 40}
	routers := []*Router{small, medium, mediumBis}
	nodes := newNodes("a", "b", "c", "d")
	ds := newDemands(
		demand("a", "b", 60, 0),
		demand("a", "c", 60, 0),  // a sends 120: needs medium
		demand("b", "a", 90, 0),  // b sends 90: small is enough
		demand("c", "a", 900, 0), // c sends 900: infeasible
		demand("z", "d", 999, 0), // unknown source is ignored, inbound to d is not counted
	)

	got := FindMinRouterPerNode(nodes, routers, ds)

	want := map[string]*Router{
		"a": medium,
		"b": small,
		"c": nil,
		"d": small,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindMinRouterPerNode(): mismatch (-want +got):\n%s", diff)
	}
	if got["a"] != medium {
		t.Errorf("FindMinRouterPerNode(): want first router among ties, got %+v", got["a"])
	}
}

func TestFindMinRouterPerNode_emptyCatalog(t *testing.T) {
	got := FindMinRouterPerNode(newNodes("a"), nil, NewDemandSet())

	want := map[string]*Router{"a": nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindMinRouterPerNode(): mismatch (-want +got):\n%s", diff)
	}
}

func TestSumCosts(t *testing.T) {
	r1 := &Router{ModelName: "r1", Cost: 100}
	r2 := &Router{ModelName: "r2", Cost: 250}
	nodes := []*Node{
		{Name: "a", Router: r1},
		{Name: "b", Router: r2},
		{Name: "c"},
		{Name: "d", Router: r1},
	}
	links := []*Link{
		newLink("ab", nodes[0], nodes[1], 12.5),
		newLink("bc", nodes[1], nodes[2], 7.5),
	}

	if got := SumRouterCosts(nodes); got != 450 {
		t.Errorf("SumRouterCosts(): want 450, got %v", got)
	}
	if got := SumCableCosts(links); got != 20 {
		t.Errorf("SumCableCosts(): want 20, got %v", got)
	}
	if got := SumRouterCosts(nil); got != 0 {
		t.Errorf("SumRouterCosts(nil): want 0, got %v", got)
	}
}

func TestSumMinRouterCosts_differsFromDeployedCosts(t *testing.T) {
	cheap := &Router{ModelName: "cheap", Capacity: 1000, Cost: 5}
	deployed := &Router{ModelName: "deployed", Capacity: 1000, Cost: 300}
	nodes := []*Node{
		{Name: "a", Router: deployed},
		{Name: "b", Router: deployed},
	}
	selection := FindMinRouterPerNode(nodes, []*Router{deployed, cheap}, NewDemandSet())

	if got := SumMinRouterCosts(selection); got != 10 {
		t.Errorf("SumMinRouterCosts(): want 10, got %v", got)
	}
	if got := SumRouterCosts(nodes); got != 600 {
		t.Errorf("SumRouterCosts(): want 600, got %v", got)
	}
	if got := SumMinRouterCosts(map[string]*Router{"a": nil}); got != 0 {
		t.Errorf("SumMinRouterCosts(infeasible): want 0, got %v", got)
	}
}
