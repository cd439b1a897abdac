package network

import (
	"fmt"
	"math"
)

// Router is a catalog entry describing a router model.
type Router struct {
	ModelName string
	Capacity  int // traffic units the router can serve
	Cost      float64
}

// Cable is a catalog entry describing a cable type.
type Cable struct {
	Name        string
	CostPerUnit float64 // cost per unit of distance
	Capacity    int     // traffic units the cable can carry
}

// Node is a network site. Router is a non-owning reference to an entry of the
// router catalog and is nil when no router is assigned.
type Node struct {
	Name   string
	X      float64
	Y      float64
	Router *Router
}

// Link is an undirected cable-based connection between two distinct nodes.
//
// Distance and ConnectionCost are derived from the endpoints and the cable
// when the link is created. They are not refreshed automatically: callers
// editing a node's coordinates, an endpoint or the cable must call Recompute.
type Link struct {
	Name  string
	Node1 *Node
	Node2 *Node
	Cable *Cable

	Distance       float64
	ConnectionCost float64
}

// NewLink creates a link between two distinct nodes and computes its derived
// attributes.
func NewLink(name string, n1 *Node, n2 *Node, cable *Cable) (*Link, error) {
	l := &Link{
		Name:  name,
		Node1: n1,
		Node2: n2,
		Cable: cable,
	}
	if err := l.Recompute(); err != nil {
		return nil, err
	}
	return l, nil
}

// Recompute refreshes the link's Distance and ConnectionCost from its current
// endpoints and cable.
func (l *Link) Recompute() error {
	if l.Node1 == nil || l.Node2 == nil || l.Cable == nil {
		return fmt.Errorf("link %q: %w", l.Name, ErrNilReference)
	}
	if l.Node1 == l.Node2 || l.Node1.Name == l.Node2.Name {
		return fmt.Errorf("link %q: %w", l.Name, ErrSelfLink)
	}
	l.Distance = Distance(l.Node1, l.Node2)
	l.ConnectionCost = l.Distance * l.Cable.CostPerUnit
	return nil
}

// Connects returns true if the link has the nodes a and b as endpoints, in
// any order.
func (l *Link) Connects(a string, b string) bool {
	n1, n2 := l.Node1.Name, l.Node2.Name
	return (n1 == a && n2 == b) || (n1 == b && n2 == a)
}

// Distance returns the euclidean distance between two nodes.
func Distance(a *Node, b *Node) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
