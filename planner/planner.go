// Package planner runs the network computations end to end: it builds the
// shortest paths of a network, aggregates its demands into per-link flows and
// delays, and selects the minimum-cost feasible routers and cables.
package planner

import (
	"errors"

	"github.com/rhartert/netplan/network"
	"github.com/rhartert/yagh"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// GlobalPacketSize, when set, is used as the packet size of every demand
	// instead of the packet sizes of the traffic matrix.
	GlobalPacketSize *float64

	// DuplicateLinks controls how several links between the same pair of
	// nodes are handled. The zero value keeps the cheapest link.
	DuplicateLinks network.DuplicatePolicy
}

type Planner struct {
	Cfg Config
	Log log.FieldLogger
}

// New returns a planner logging to logger. A nil logger uses the standard
// logrus logger.
func New(cfg Config, logger log.FieldLogger) *Planner {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Planner{
		Cfg: cfg,
		Log: logger.WithField("component", "planner"),
	}
}

// Plan computes the report of net. The network is not modified.
func (p *Planner) Plan(net *network.Network) (*Report, error) {
	if net == nil {
		return nil, errors.New("network is nil")
	}
	demands := net.Demands
	if demands == nil {
		demands = network.NewDemandSet()
	}

	opts := []network.FlowOption{network.WithDuplicatePolicy(p.Cfg.DuplicateLinks)}
	if p.Cfg.GlobalPacketSize != nil {
		opts = append(opts, network.WithGlobalPacketSize(*p.Cfg.GlobalPacketSize))
	}
	ft, err := network.ComputeFlows(net.Nodes, net.Links, demands, opts...)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Paths:            ft.ShortestPaths().Table(),
		Routed:           ft.Routed(),
		Skipped:          ft.Skipped(),
		MinRouterPerNode: network.FindMinRouterPerNode(net.Nodes, net.Routers, demands),
		MinRouter:        network.FindMinRouter(net.Routers, demands),
		MinCable:         network.FindMinCable(net.Cables, demands),
		flows:            ft,
	}

	flows := ft.Flows()
	r.Links = make([]LinkReport, len(flows))
	delays := make([]network.Delay, len(flows))
	for i, lf := range flows {
		r.Links[i] = newLinkReport(lf)
		delays[i] = r.Links[i].Delay
	}
	r.AverageDelay, r.HasAverageDelay = network.AverageDelay(delays)
	r.MostUtilized = mostUtilized(r.Links)

	for _, n := range net.Nodes {
		if r.MinRouterPerNode[n.Name] == nil {
			r.InfeasibleNodes = append(r.InfeasibleNodes, n.Name)
		}
	}

	r.Costs = Costs{
		DeployedRouters: network.SumRouterCosts(net.Nodes),
		DeployedCables:  network.SumCableCosts(net.Links),
		MinimumRouters:  network.SumMinRouterCosts(r.MinRouterPerNode),
	}

	p.logReport(r)
	return r, nil
}

func (p *Planner) logReport(r *Report) {
	for _, pair := range r.Skipped {
		p.Log.WithFields(log.Fields{
			"src": pair.Source,
			"dst": pair.Target,
		}).Debug("Demand not routed")
	}
	for _, lr := range r.Links {
		if !lr.Delay.IsSaturated() {
			continue
		}
		p.Log.WithFields(log.Fields{
			"link":     lr.Link.Name,
			"flow":     lr.Flow,
			"capacity": lr.Link.Cable.Capacity,
		}).Warn("Link saturated")
	}
	for _, name := range r.InfeasibleNodes {
		p.Log.WithField("node", name).Warn("No feasible router for node")
	}
	if r.MinCable == nil && len(r.Links) > 0 {
		p.Log.Warn("No feasible cable for the total traffic")
	}
	p.Log.WithFields(log.Fields{
		"routed":  len(r.Routed),
		"skipped": len(r.Skipped),
		"links":   len(r.Links),
	}).Info("Plan computed")
}

// mostUtilized returns the index of the link with the highest utilization,
// or -1 if there are no links. Ties are broken in favor of the smallest
// index.
func mostUtilized(links []LinkReport) int {
	if len(links) == 0 {
		return -1
	}
	byUtil := yagh.New[float64](len(links))
	for i, lr := range links {
		byUtil.Put(i, -lr.Utilization) // non-decreasing order
	}
	entry, _ := byUtil.Min()
	return entry.Elem
}
