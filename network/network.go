// Package network contains the computation engine of the network planner:
// the entity model (routers, cables, nodes, links and traffic demands), the
// topology built from nodes and links, all-pairs shortest paths, the
// aggregation of demands into per-link flows and delays, and the selection of
// minimum-cost feasible routers and cables.
//
// All the functions of this package are synchronous and operate on in-memory
// collections. They never mutate their inputs except where documented.
package network

// Network groups the catalogs, the sites, the links and the traffic demands
// of a network plan.
type Network struct {
	Routers []*Router
	Cables  []*Cable
	Nodes   []*Node
	Links   []*Link
	Demands *DemandSet
}

// New returns an empty network.
func New() *Network {
	return &Network{Demands: NewDemandSet()}
}

// RemoveNode removes the named node and every link that references it. It
// returns false if no such node exists. Demands referring to the node are
// kept.
func (n *Network) RemoveNode(name string) bool {
	i := -1
	for j, node := range n.Nodes {
		if node.Name == name {
			i = j
			break
		}
	}
	if i < 0 {
		return false
	}
	n.Nodes = append(n.Nodes[:i], n.Nodes[i+1:]...)

	kept := n.Links[:0]
	for _, l := range n.Links {
		if l.Node1.Name == name || l.Node2.Name == name {
			continue
		}
		kept = append(kept, l)
	}
	for j := len(kept); j < len(n.Links); j++ {
		n.Links[j] = nil
	}
	n.Links = kept
	return true
}

// RemoveLink removes the first link with the given name. It returns false if
// no such link exists.
func (n *Network) RemoveLink(name string) bool {
	for i, l := range n.Links {
		if l.Name == name {
			n.Links = append(n.Links[:i], n.Links[i+1:]...)
			return true
		}
	}
	return false
}
