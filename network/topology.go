package network

import (
	"fmt"
)

// DuplicatePolicy decides how the topology handles several links between the
// same pair of nodes.
type DuplicatePolicy int8

const (
	// MinCostDuplicate keeps, for each pair of nodes, the link with the lowest
	// connection cost. Ties are broken in favor of the earliest link.
	MinCostDuplicate DuplicatePolicy = iota

	// RejectDuplicates fails topology construction with ErrDuplicateLink.
	RejectDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case MinCostDuplicate:
		return "min-cost"
	case RejectDuplicates:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int8(p))
	}
}

// ParseDuplicatePolicy returns the policy named s ("min-cost" or "reject").
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "min-cost", "":
		return MinCostDuplicate, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return 0, fmt.Errorf("unknown duplicate link policy %q", s)
	}
}

// Edge represents a directed edge between two nodes of the topology. Each
// link of the network is represented by two edges, one in each direction.
type Edge struct {
	From int
	To   int
	Cost float64
	Link int // index of the link in Topology.Links
}

type nodePair struct {
	lo int
	hi int
}

func pairOf(u int, v int) nodePair {
	if u > v {
		u, v = v, u
	}
	return nodePair{lo: u, hi: v}
}

// Topology represents the network as a weighted directed graph where nodes are
// identified by their position in Names and edge costs are the connection
// costs of the links.
type Topology struct {
	Names []string
	Nexts [][]int
	Edges []Edge
	Links []*Link

	nodes map[string]int
	pairs map[nodePair]int // unordered pair of nodes -> forward edge
}

// NewTopology builds the topology of the given nodes and links.
//
// Links with an endpoint that is not part of nodes, or whose endpoints are the
// same node, are ignored. Duplicate node names are rejected with
// ErrDuplicateNode. Several links between the same pair of nodes are handled
// according to policy.
func NewTopology(nodes []*Node, links []*Link, policy DuplicatePolicy) (*Topology, error) {
	t := &Topology{
		Names: make([]string, len(nodes)),
		Nexts: make([][]int, len(nodes)),
		nodes: make(map[string]int, len(nodes)),
		pairs: make(map[nodePair]int, len(links)),
	}

	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("node at position %d: %w", i, ErrNilReference)
		}
		if _, ok := t.nodes[n.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
		}
		t.nodes[n.Name] = i
		t.Names[i] = n.Name
	}

	for _, l := range links {
		if l == nil || l.Node1 == nil || l.Node2 == nil {
			continue
		}
		u, okU := t.nodes[l.Node1.Name]
		v, okV := t.nodes[l.Node2.Name]
		if !okU || !okV || u == v {
			continue
		}

		key := pairOf(u, v)
		e, ok := t.pairs[key]
		if !ok {
			t.addLink(u, v, l)
			continue
		}

		// Several links between u and v.
		if policy == RejectDuplicates {
			return nil, fmt.Errorf("%w: %q and %q (links %q and %q)",
				ErrDuplicateLink, l.Node1.Name, l.Node2.Name, t.Links[t.Edges[e].Link].Name, l.Name)
		}
		if l.ConnectionCost < t.Edges[e].Cost {
			li := t.Edges[e].Link
			t.Links[li] = l
			t.Edges[e].Cost = l.ConnectionCost
			t.Edges[e+1].Cost = l.ConnectionCost
		}
	}

	return t, nil
}

// addLink registers l as the link between u and v and adds the two edges
// (u, v) and (v, u) at consecutive positions.
func (t *Topology) addLink(u int, v int, l *Link) {
	li := len(t.Links)
	t.Links = append(t.Links, l)

	e := len(t.Edges)
	t.Edges = append(t.Edges,
		Edge{From: u, To: v, Cost: l.ConnectionCost, Link: li},
		Edge{From: v, To: u, Cost: l.ConnectionCost, Link: li},
	)
	t.Nexts[u] = append(t.Nexts[u], e)
	t.Nexts[v] = append(t.Nexts[v], e+1)
	t.pairs[pairOf(u, v)] = e
}

// NumNodes returns the number of nodes in the topology.
func (t *Topology) NumNodes() int {
	return len(t.Names)
}

// NodeID returns the position of the named node. The second returned value is
// false if the node is not part of the topology.
func (t *Topology) NodeID(name string) (int, bool) {
	id, ok := t.nodes[name]
	return id, ok
}

// LinkBetween returns the link carrying traffic between nodes a and b, in any
// direction. The second returned value is false if the nodes are not directly
// connected.
func (t *Topology) LinkBetween(a string, b string) (*Link, bool) {
	u, okU := t.nodes[a]
	v, okV := t.nodes[b]
	if !okU || !okV {
		return nil, false
	}
	e, ok := t.pairs[pairOf(u, v)]
	if !ok {
		return nil, false
	}
	return t.Links[t.Edges[e].Link], true
}

// Adjacency returns the weighted adjacency structure of the topology: for
// every node name, a mapping from each neighbor's name to the connection cost
// of the link joining them. Isolated nodes map to an empty neighbor mapping.
func (t *Topology) Adjacency() map[string]map[string]float64 {
	adj := make(map[string]map[string]float64, len(t.Names))
	for u, name := range t.Names {
		neighbors := make(map[string]float64, len(t.Nexts[u]))
		for _, e := range t.Nexts[u] {
			neighbors[t.Names[t.Edges[e].To]] = t.Edges[e].Cost
		}
		adj[name] = neighbors
	}
	return adj
}

// BuildGraph returns the weighted adjacency structure of the given nodes and
// links, keeping the cheapest link between any pair of nodes.
func BuildGraph(nodes []*Node, links []*Link) (map[string]map[string]float64, error) {
	t, err := NewTopology(nodes, links, MinCostDuplicate)
	if err != nil {
		return nil, err
	}
	return t.Adjacency(), nil
}
