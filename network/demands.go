package network

// Pair is an ordered pair of node names.
type Pair struct {
	Source string
	Target string
}

// Demand is a requested traffic volume and packet size from Source to Target.
type Demand struct {
	Pair
	Traffic    float64
	PacketSize float64
}

// DemandSet maps ordered pairs of node names to demands. Iteration follows
// insertion order; overwriting a pair keeps its original position.
//
// Demands may refer to node names that are not (or no longer) part of the
// network. Such demands are kept and simply skipped by the flow aggregator.
type DemandSet struct {
	demands []Demand
	index   map[Pair]int
}

// NewDemandSet returns an empty demand set.
func NewDemandSet() *DemandSet {
	return &DemandSet{index: map[Pair]int{}}
}

// Set records the demand from source to target, overwriting any existing
// demand for the same ordered pair. It returns a *DemandError matching
// ErrInvalidDemand, and leaves the set unchanged, if traffic or packetSize is
// negative (or NaN).
func (ds *DemandSet) Set(source string, target string, traffic float64, packetSize float64) error {
	if !(traffic >= 0) {
		return &DemandError{Source: source, Target: target, Field: "traffic", Value: traffic}
	}
	if !(packetSize >= 0) {
		return &DemandError{Source: source, Target: target, Field: "packet_size", Value: packetSize}
	}

	if ds.index == nil {
		ds.index = map[Pair]int{}
	}
	p := Pair{Source: source, Target: target}
	d := Demand{Pair: p, Traffic: traffic, PacketSize: packetSize}
	if i, ok := ds.index[p]; ok {
		ds.demands[i] = d
		return nil
	}
	ds.index[p] = len(ds.demands)
	ds.demands = append(ds.demands, d)
	return nil
}

// Get returns the demand from source to target, or a zero demand for that
// pair if none was set.
func (ds *DemandSet) Get(source string, target string) Demand {
	d, _ := ds.Lookup(source, target)
	return d
}

// Lookup returns the demand from source to target. The second returned value
// is false if no demand was set for that pair.
func (ds *DemandSet) Lookup(source string, target string) (Demand, bool) {
	p := Pair{Source: source, Target: target}
	if i, ok := ds.index[p]; ok {
		return ds.demands[i], true
	}
	return Demand{Pair: p}, false
}

// Remove deletes the demand from source to target. It returns false if no
// demand was set for that pair.
func (ds *DemandSet) Remove(source string, target string) bool {
	p := Pair{Source: source, Target: target}
	i, ok := ds.index[p]
	if !ok {
		return false
	}
	delete(ds.index, p)
	ds.demands = append(ds.demands[:i], ds.demands[i+1:]...)
	for j := i; j < len(ds.demands); j++ {
		ds.index[ds.demands[j].Pair] = j
	}
	return true
}

// Len returns the number of demands in the set.
func (ds *DemandSet) Len() int {
	return len(ds.demands)
}

// All returns the demands in insertion order.
//
// Important: the slice is a view on the set's internal structure and should
// only be used in read-only operations.
func (ds *DemandSet) All() []Demand {
	return ds.demands
}

// TotalTraffic returns the sum of the traffic of all demands, whether or not
// their endpoints exist.
func (ds *DemandSet) TotalTraffic() float64 {
	total := 0.0
	for _, d := range ds.demands {
		total += d.Traffic
	}
	return total
}

// OutboundTraffic returns the sum of the traffic of all demands whose source
// is the given node.
func (ds *DemandSet) OutboundTraffic(source string) float64 {
	total := 0.0
	for _, d := range ds.demands {
		if d.Source == source {
			total += d.Traffic
		}
	}
	return total
}
