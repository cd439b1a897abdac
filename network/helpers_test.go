package network

// testCable has cost 1 per unit of distance so that the connection cost of a
// link equals its distance.
var testCable = &Cable{Name: "test", CostPerUnit: 1, Capacity: 1000}

// newNodes returns nodes with the given names, placed at the origin.
func newNodes(names ...string) []*Node {
	nodes := make([]*Node, len(names))
	for i, n := range names {
		nodes[i] = &Node{Name: n}
	}
	return nodes
}

// newLink returns a link between a and b with an explicit connection cost.
func newLink(name string, a *Node, b *Node, cost float64) *Link {
	return &Link{
		Name:           name,
		Node1:          a,
		Node2:          b,
		Cable:          testCable,
		Distance:       cost,
		ConnectionCost: cost,
	}
}

// newDemands returns a demand set built from the given demands. It panics if
// a demand is invalid.
func newDemands(demands ...Demand) *DemandSet {
	ds := NewDemandSet()
	for _, d := range demands {
		if err := ds.Set(d.Source, d.Target, d.Traffic, d.PacketSize); err != nil {
			panic(err)
		}
	}
	return ds
}

func demand(src string, dst string, traffic float64, packet float64) Demand {
	return Demand{Pair: Pair{src, dst}, Traffic: traffic, PacketSize: packet}
}
