package planner

import (
	"errors"

	"github.com/rhartert/netplan/network"
)

// LinkReport is the flow of a link with its derived metrics.
type LinkReport struct {
	Link        *network.Link
	Flow        float64
	Packet      float64
	Utilization float64
	Delay       network.Delay
}

func newLinkReport(lf network.LinkFlow) LinkReport {
	return LinkReport{
		Link:        lf.Link,
		Flow:        lf.Flow,
		Packet:      lf.Packet,
		Utilization: lf.Utilization(),
		Delay:       lf.Delay(),
	}
}

// Costs groups the as-deployed costs of a network and the cost of its
// minimum feasible router selection.
type Costs struct {
	DeployedRouters float64 // routers assigned to the nodes
	DeployedCables  float64 // connection costs of the links
	MinimumRouters  float64 // cheapest feasible router of every node
}

// Report is the result of planning a network.
type Report struct {
	Paths   network.PathTable
	Routed  []network.RoutedDemand
	Skipped []network.Pair

	// Links holds the flow of every link, in the network's link order.
	Links []LinkReport

	// AverageDelay is the mean of the finite link delays. HasAverageDelay is
	// false when no link has a finite delay.
	AverageDelay    float64
	HasAverageDelay bool

	// MostUtilized is the index in Links of the most utilized link, -1 if
	// the network has no links.
	MostUtilized int

	MinRouterPerNode map[string]*network.Router
	InfeasibleNodes  []string
	MinRouter        *network.Router
	MinCable         *network.Cable

	Costs Costs

	flows *network.FlowTable
}

// SaturatedLinks returns the links whose flow reaches their capacity.
func (r *Report) SaturatedLinks() []LinkReport {
	var saturated []LinkReport
	for _, lr := range r.Links {
		if lr.Delay.IsSaturated() {
			saturated = append(saturated, lr)
		}
	}
	return saturated
}

// Probe returns the links on d's shortest path with the flow they would carry
// if d was added to the plan. The report is left unchanged. The second
// returned value is false if d cannot be routed.
func (r *Report) Probe(d network.Demand) ([]LinkReport, bool, error) {
	if r.flows == nil {
		return nil, false, errors.New("report was not produced by a planner")
	}
	flows, ok, err := r.flows.Probe(d)
	if err != nil || !ok {
		return nil, ok, err
	}
	probed := make([]LinkReport, len(flows))
	for i, lf := range flows {
		probed[i] = newLinkReport(lf)
	}
	return probed, true, nil
}
