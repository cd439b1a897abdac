package network

// FindMinCable returns the cheapest cable (by cost per unit) whose capacity is
// at least the total traffic of ds. Ties are broken in favor of the cable that
// comes first in cables. It returns nil if no cable is feasible.
func FindMinCable(cables []*Cable, ds *DemandSet) *Cable {
	total := ds.TotalTraffic()

	var best *Cable
	for _, c := range cables {
		if c == nil || float64(c.Capacity) < total {
			continue
		}
		if best == nil || c.CostPerUnit < best.CostPerUnit {
			best = c
		}
	}
	return best
}

// FindMinRouter returns the cheapest router whose capacity is at least the
// total traffic of ds. Ties are broken in favor of the router that comes first
// in routers. It returns nil if no router is feasible.
func FindMinRouter(routers []*Router, ds *DemandSet) *Router {
	return minRouter(routers, ds.TotalTraffic())
}

// FindMinRouterPerNode returns, for each node, the cheapest router whose
// capacity is at least the node's outbound traffic (the traffic of the
// demands whose source is the node). Inbound traffic is not counted. Nodes
// for which no router is feasible map to nil.
func FindMinRouterPerNode(nodes []*Node, routers []*Router, ds *DemandSet) map[string]*Router {
	outbound := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		outbound[n.Name] = 0
	}
	for _, d := range ds.All() {
		if _, ok := outbound[d.Source]; ok {
			outbound[d.Source] += d.Traffic
		}
	}

	selection := make(map[string]*Router, len(nodes))
	for _, n := range nodes {
		selection[n.Name] = minRouter(routers, outbound[n.Name])
	}
	return selection
}

func minRouter(routers []*Router, traffic float64) *Router {
	var best *Router
	for _, r := range routers {
		if r == nil || float64(r.Capacity) < traffic {
			continue
		}
		if best == nil || r.Cost < best.Cost {
			best = r
		}
	}
	return best
}

// SumRouterCosts returns the total cost of the routers currently assigned to
// the nodes. Nodes without a router are ignored.
func SumRouterCosts(nodes []*Node) float64 {
	total := 0.0
	for _, n := range nodes {
		if n.Router != nil {
			total += n.Router.Cost
		}
	}
	return total
}

// SumCableCosts returns the total connection cost of the links.
func SumCableCosts(links []*Link) float64 {
	total := 0.0
	for _, l := range links {
		total += l.ConnectionCost
	}
	return total
}

// SumMinRouterCosts returns the total cost of a per-node router selection as
// returned by FindMinRouterPerNode. Nodes without a feasible router are
// ignored.
func SumMinRouterCosts(selection map[string]*Router) float64 {
	total := 0.0
	for _, r := range selection {
		if r != nil {
			total += r.Cost
		}
	}
	return total
}
