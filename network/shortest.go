package network

import (
	"fmt"
	"math"

	"github.com/rhartert/netplan/network/paths"
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// PathTable maps each source node name to the shortest path towards every
// other node name. Unreachable destinations map to an empty path and a node
// never appears as a destination of itself.
type PathTable map[string]map[string]paths.Path

// Path returns the shortest path from src to dst, or an empty path if either
// node is unknown or dst cannot be reached from src.
func (pt PathTable) Path(src string, dst string) paths.Path {
	p, ok := pt[src][dst]
	if !ok {
		return paths.Empty()
	}
	return p
}

// ShortestPaths holds the result of a shortest path search from every node of
// a topology.
//
// The search runs Dijkstra's algorithm once per source node, which takes
// O(V(V+E) log V) overall and O(V^3 log V) on dense networks.
type ShortestPaths struct {
	topo  *Topology
	dists [][]float64
	prevs [][]int
}

// NewShortestPaths computes the shortest paths between all pairs of nodes of
// the topology. It returns an error if an edge has a negative or NaN cost.
func NewShortestPaths(t *Topology) (*ShortestPaths, error) {
	if t == nil {
		return nil, fmt.Errorf("topology is nil")
	}
	for _, e := range t.Edges {
		if !(e.Cost >= 0) {
			return nil, fmt.Errorf("link %q has invalid cost %v", t.Links[e.Link].Name, e.Cost)
		}
	}

	nNodes := t.NumNodes()
	sp := &ShortestPaths{
		topo:  t,
		dists: make([][]float64, nNodes),
		prevs: make([][]int, nNodes),
	}
	for u := 0; u < nNodes; u++ {
		sp.dists[u], sp.prevs[u] = shortestTree(t, u)
	}
	return sp, nil
}

// Topology returns the topology the paths were computed on.
func (sp *ShortestPaths) Topology() *Topology {
	return sp.topo
}

// Distance returns the cost of the shortest path from src to dst. The second
// returned value is false if either node is unknown or dst is unreachable.
func (sp *ShortestPaths) Distance(src string, dst string) (float64, bool) {
	u, okU := sp.topo.NodeID(src)
	v, okV := sp.topo.NodeID(dst)
	if !okU || !okV {
		return 0, false
	}
	d := sp.dists[u][v]
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// Path returns the shortest path from src to dst, or an empty path if either
// node is unknown or dst is unreachable from src.
func (sp *ShortestPaths) Path(src string, dst string) paths.Path {
	u, okU := sp.topo.NodeID(src)
	v, okV := sp.topo.NodeID(dst)
	if !okU || !okV {
		return paths.Empty()
	}
	return paths.Reconstruct(sp.topo.Names, sp.prevs[u], u, v)
}

// Table returns the shortest paths between all pairs of distinct nodes.
func (sp *ShortestPaths) Table() PathTable {
	names := sp.topo.Names
	table := make(PathTable, len(names))
	for u, src := range names {
		row := make(map[string]paths.Path, len(names)-1)
		for v, dst := range names {
			if u == v {
				continue
			}
			row[dst] = paths.Reconstruct(names, sp.prevs[u], u, v)
		}
		table[src] = row
	}
	return table
}

// AllShortestPaths returns the shortest paths between all pairs of distinct
// nodes, using the connection cost of links as edge weights and keeping the
// cheapest link between any pair of nodes.
func AllShortestPaths(nodes []*Node, links []*Link) (PathTable, error) {
	t, err := NewTopology(nodes, links, MinCostDuplicate)
	if err != nil {
		return nil, err
	}
	sp, err := NewShortestPaths(t)
	if err != nil {
		return nil, err
	}
	return sp.Table(), nil
}

// shortestTree computes the shortest paths from node src to all the other
// nodes of t. It returns the cost of the best path to each node (+Inf if the
// node is unreachable) and the predecessor of each node on that path (-1 for
// src and unreachable nodes).
//
// Each node is finalized at most once, which guarantees termination in the
// presence of zero-cost edges.
func shortestTree(t *Topology, src int) ([]float64, []int) {
	nNodes := t.NumNodes()

	costs := make([]float64, nNodes)
	prevs := make([]int, nNodes)
	for i := range costs {
		costs[i] = math.Inf(1)
		prevs[i] = -1
	}

	visited := sparsesets.New(nNodes)
	h := yagh.New[float64](nNodes)
	h.Put(src, 0)
	costs[src] = 0

	for h.Size() > 0 {
		entry, _ := h.Pop()
		u := entry.Elem
		if visited.Contains(u) {
			continue
		}
		visited.Insert(u)
		c := costs[u]

		for _, e := range t.Nexts[u] {
			v := t.Edges[e].To
			if visited.Contains(v) {
				continue
			}

			// Path src -> u -> v is not better than the best known path.
			newCost := c + t.Edges[e].Cost
			if costs[v] <= newCost {
				continue
			}

			costs[v] = newCost
			prevs[v] = u
			h.Put(v, newCost)
		}
	}

	return costs, prevs
}
