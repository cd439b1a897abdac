package network

import (
	"fmt"

	"github.com/rhartert/netplan/network/paths"
)

// LinkFlow is the traffic routed over a link: the sum of the traffic of all the
// demands whose shortest path traverses the link, and the largest packet size
// among those demands.
type LinkFlow struct {
	Link   *Link
	Flow   float64
	Packet float64
}

// Delay returns the modeled queuing delay of the link.
func (lf LinkFlow) Delay() Delay {
	return LinkDelay(lf.Flow, lf.Packet, lf.Link.Cable.Capacity)
}

// Utilization returns the ratio between the link's flow and its cable's
// capacity. A link without capacity is fully utilized as soon as it carries
// any flow.
func (lf LinkFlow) Utilization() float64 {
	c := float64(lf.Link.Cable.Capacity)
	if c <= 0 {
		if lf.Flow > 0 {
			return 1
		}
		return 0
	}
	return lf.Flow / c
}

type flowOptions struct {
	globalPacketSize *float64
	duplicates       DuplicatePolicy
}

// FlowOption configures the flow aggregation.
type FlowOption func(*flowOptions)

// WithGlobalPacketSize uses size as the packet size of every demand, ignoring
// the packet sizes stored in the demand set.
func WithGlobalPacketSize(size float64) FlowOption {
	return func(o *flowOptions) {
		o.globalPacketSize = &size
	}
}

// WithDuplicatePolicy sets how several links between the same pair of nodes
// are handled. Defaults to MinCostDuplicate.
func WithDuplicatePolicy(p DuplicatePolicy) FlowOption {
	return func(o *flowOptions) {
		o.duplicates = p
	}
}

// FlowTable holds the flow of each link obtained by routing every demand along
// the shortest path between its endpoints.
type FlowTable struct {
	sp    *ShortestPaths
	links []*Link
	index map[*Link]int
	state *LinkState

	packetSize *float64
	routed     []RoutedDemand
	skipped    []Pair
}

// RoutedDemand is a demand together with the shortest path it is routed on.
type RoutedDemand struct {
	Demand
	Path paths.Path
}

// ComputeFlows routes each demand of ds along its shortest path between nodes
// and returns the resulting flow on each link.
//
// Demands whose source or target is not one of nodes, whose source equals its
// target, or whose target is unreachable are skipped; they are reported by
// FlowTable.Skipped.
func ComputeFlows(nodes []*Node, links []*Link, ds *DemandSet, opts ...FlowOption) (*FlowTable, error) {
	o := flowOptions{duplicates: MinCostDuplicate}
	for _, opt := range opts {
		opt(&o)
	}

	t, err := NewTopology(nodes, links, o.duplicates)
	if err != nil {
		return nil, err
	}
	sp, err := NewShortestPaths(t)
	if err != nil {
		return nil, err
	}
	return NewFlowTable(sp, links, ds, opts...)
}

// NewFlowTable routes each demand of ds over the precomputed shortest paths
// sp. Every link of links gets an entry, including links that carry no
// traffic. The duplicate policy option is ignored: sp already embeds it.
func NewFlowTable(sp *ShortestPaths, links []*Link, ds *DemandSet, opts ...FlowOption) (*FlowTable, error) {
	if sp == nil {
		return nil, fmt.Errorf("shortest paths are nil")
	}
	o := flowOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.globalPacketSize != nil && !(*o.globalPacketSize >= 0) {
		return nil, fmt.Errorf("%w: global packet size must be non-negative, got %v",
			ErrInvalidDemand, *o.globalPacketSize)
	}

	ft := &FlowTable{
		sp:         sp,
		links:      make([]*Link, 0, len(links)),
		index:      make(map[*Link]int, len(links)),
		packetSize: o.globalPacketSize,
	}
	for _, l := range links {
		if l == nil {
			continue
		}
		if _, ok := ft.index[l]; ok {
			continue
		}
		ft.index[l] = len(ft.links)
		ft.links = append(ft.links, l)
	}
	ft.state = NewLinkState(len(ft.links))

	if ds != nil {
		for _, d := range ds.All() {
			if p, ok := ft.route(d); ok {
				ft.routed = append(ft.routed, RoutedDemand{Demand: d, Path: p})
			} else {
				ft.skipped = append(ft.skipped, d.Pair)
			}
		}
	}
	ft.state.PersistChanges()

	return ft, nil
}

// route adds the demand's traffic to every link of its shortest path. It
// returns false if the demand cannot be routed.
func (ft *FlowTable) route(d Demand) (paths.Path, bool) {
	if d.Source == d.Target {
		return nil, false
	}
	p := ft.sp.Path(d.Source, d.Target)
	if p.Length() < 2 {
		return nil, false
	}

	packet := d.PacketSize
	if ft.packetSize != nil {
		packet = *ft.packetSize
	}
	for _, h := range p.Hops() {
		l, ok := ft.sp.Topology().LinkBetween(h.From, h.To)
		if !ok {
			continue
		}
		i, ok := ft.index[l]
		if !ok {
			continue // link not part of the table
		}
		ft.state.AddFlow(i, d.Traffic, packet)
	}
	return p, true
}

// ShortestPaths returns the shortest paths the demands are routed on.
func (ft *FlowTable) ShortestPaths() *ShortestPaths {
	return ft.sp
}

// Flows returns the flow of every link, in the order the links were given.
func (ft *FlowTable) Flows() []LinkFlow {
	flows := make([]LinkFlow, len(ft.links))
	for i, l := range ft.links {
		flows[i] = ft.at(i, l)
	}
	return flows
}

// Get returns the flow of link l. The second returned value is false if l is
// not part of the table.
func (ft *FlowTable) Get(l *Link) (LinkFlow, bool) {
	i, ok := ft.index[l]
	if !ok {
		return LinkFlow{}, false
	}
	return ft.at(i, l), true
}

// Map returns the flow of every link keyed by link.
func (ft *FlowTable) Map() map[*Link]LinkFlow {
	m := make(map[*Link]LinkFlow, len(ft.links))
	for i, l := range ft.links {
		m[l] = ft.at(i, l)
	}
	return m
}

// Delays returns the delay of every link, in the order the links were given.
func (ft *FlowTable) Delays() []Delay {
	delays := make([]Delay, len(ft.links))
	for i, l := range ft.links {
		delays[i] = ft.at(i, l).Delay()
	}
	return delays
}

// Routed returns the demands that were routed, with their paths, in the
// demand set's order.
func (ft *FlowTable) Routed() []RoutedDemand {
	return ft.routed
}

// Skipped returns the pairs of the demands that could not be routed, in the
// demand set's order.
func (ft *FlowTable) Skipped() []Pair {
	return ft.skipped
}

// Probe returns the flow that every link would carry if demand d was added to
// the table, limited to the links on d's shortest path. The table itself is
// left unchanged. The second returned value is false if d cannot be routed.
// Demands with a negative traffic or packet size are rejected with a
// *DemandError.
func (ft *FlowTable) Probe(d Demand) ([]LinkFlow, bool, error) {
	if !(d.Traffic >= 0) {
		return nil, false, &DemandError{Source: d.Source, Target: d.Target, Field: "traffic", Value: d.Traffic}
	}
	if !(d.PacketSize >= 0) {
		return nil, false, &DemandError{Source: d.Source, Target: d.Target, Field: "packet_size", Value: d.PacketSize}
	}

	defer ft.state.UndoChanges()
	if _, ok := ft.route(d); !ok {
		return nil, false, nil
	}
	changes := ft.state.Changes()
	probed := make([]LinkFlow, 0, len(changes))
	for _, fc := range changes {
		probed = append(probed, ft.at(fc.Link, ft.links[fc.Link]))
	}
	return probed, true, nil
}

func (ft *FlowTable) at(i int, l *Link) LinkFlow {
	return LinkFlow{
		Link:   l,
		Flow:   ft.state.Flow(i),
		Packet: ft.state.Packet(i),
	}
}

// RoutedDemands returns the demands of ds that have a non-empty shortest path
// in table, each with its path, in the demand set's order.
func RoutedDemands(table PathTable, ds *DemandSet) []RoutedDemand {
	var routed []RoutedDemand
	for _, d := range ds.All() {
		p, ok := table[d.Source][d.Target]
		if !ok || p.IsEmpty() {
			continue
		}
		routed = append(routed, RoutedDemand{Demand: d, Path: p})
	}
	return routed
}
