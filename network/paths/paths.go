// Package paths provides a small value type to represent and inspect shortest
// paths between named nodes of a network.
package paths

import (
	"strings"
)

// Path represents a route between two nodes in a network as the ordered
// sequence of node names it traverses.
//
// A non-empty Path respects the following invariants:
//
//   - Source node: First element in the slice
//   - Destination node: Last element in the slice
//   - Unique nodes: No node appears twice
//
// The empty Path is a valid value and means that the destination cannot be
// reached from the source.
type Path []string

// Hop is a pair of consecutive nodes in a path.
type Hop struct {
	From string
	To   string
}

// Empty returns a new empty path.
func Empty() Path {
	return Path{}
}

// Reconstruct rebuilds the path from src to dst by walking the predecessors
// of dst back to src. Nodes are identified by their position in names and
// prevs[v] is the predecessor of v on the path from src, or -1 if v has no
// predecessor. The returned path is empty if dst cannot be reached from src.
func Reconstruct(names []string, prevs []int, src int, dst int) Path {
	if src == dst {
		return Path{names[src]}
	}
	if prevs[dst] < 0 {
		return Empty()
	}

	n := 0
	for v := dst; v >= 0 && v != src; v = prevs[v] {
		n++
		if n > len(prevs) {
			return Empty() // predecessor cycle
		}
	}

	p := make(Path, n+1)
	v := dst
	for i := n; i > 0; i-- {
		p[i] = names[v]
		v = prevs[v]
	}
	if v != src {
		return Empty()
	}
	p[0] = names[src]
	return p
}

// Length returns the number of nodes in the path.
func (p Path) Length() int {
	return len(p)
}

// IsEmpty returns true if the path does not reach its destination.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Source returns the first node of the path or "" if the path is empty.
func (p Path) Source() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Destination returns the last node of the path or "" if the path is empty.
func (p Path) Destination() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Hops returns the consecutive pairs of nodes of the path. A path with less
// than two nodes has no hops.
func (p Path) Hops() []Hop {
	if len(p) < 2 {
		return nil
	}
	hops := make([]Hop, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		hops = append(hops, Hop{From: p[i-1], To: p[i]})
	}
	return hops
}

// String returns a string representation of the path as a sequence of nodes
// separated by " -> ". For example: "a -> d -> c -> b".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}
