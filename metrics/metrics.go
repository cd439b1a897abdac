// Package metrics exports a plan as Prometheus gauges.
package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rhartert/netplan/network"
	"github.com/rhartert/netplan/planner"
)

// Registry holds the gauges describing the last observed plan.
type Registry struct {
	LinkFlow        *prometheus.GaugeVec
	LinkUtilization *prometheus.GaugeVec
	LinkDelay       *prometheus.GaugeVec
	LinkSaturated   *prometheus.GaugeVec

	AverageDelay    prometheus.Gauge
	Demands         *prometheus.GaugeVec
	InfeasibleNodes prometheus.Gauge
	Costs           *prometheus.GaugeVec

	registry *prometheus.Registry
}

func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initLinkMetrics()
	r.initPlanMetrics()
	return r
}

func (r *Registry) initLinkMetrics() {
	r.LinkFlow = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplan_link_flow",
			Help: "Traffic routed over the link",
		},
		[]string{"link", "endpoints"},
	)

	r.LinkUtilization = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplan_link_utilization_ratio",
			Help: "Ratio between the link flow and its cable capacity",
		},
		[]string{"link", "endpoints"},
	)

	r.LinkDelay = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplan_link_delay",
			Help: "Queuing delay of the link (+Inf when saturated)",
		},
		[]string{"link", "endpoints"},
	)

	r.LinkSaturated = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplan_link_saturated",
			Help: "Whether the link flow reaches its capacity (1=yes, 0=no)",
		},
		[]string{"link", "endpoints"},
	)
}

func (r *Registry) initPlanMetrics() {
	r.AverageDelay = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplan_average_delay",
			Help: "Mean of the finite link delays (NaN when there is none)",
		},
	)

	r.Demands = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplan_demands",
			Help: "Number of traffic demands",
		},
		[]string{"state"}, // routed, skipped
	)

	r.InfeasibleNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplan_infeasible_nodes",
			Help: "Number of nodes for which no router is feasible",
		},
	)

	r.Costs = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplan_cost",
			Help: "Network costs",
		},
		[]string{"kind"}, // deployed_routers, deployed_cables, minimum_routers
	)
}

// Observe sets the gauges from the report. Link gauges of previously observed
// reports are dropped.
func (r *Registry) Observe(rep *planner.Report) {
	r.LinkFlow.Reset()
	r.LinkUtilization.Reset()
	r.LinkDelay.Reset()
	r.LinkSaturated.Reset()

	for _, lr := range rep.Links {
		labels := linkLabels(lr.Link)
		r.LinkFlow.With(labels).Set(lr.Flow)
		r.LinkUtilization.With(labels).Set(lr.Utilization)
		if d, ok := lr.Delay.Value(); ok {
			r.LinkDelay.With(labels).Set(d)
			r.LinkSaturated.With(labels).Set(0)
		} else {
			r.LinkDelay.With(labels).Set(math.Inf(1))
			r.LinkSaturated.With(labels).Set(1)
		}
	}

	if rep.HasAverageDelay {
		r.AverageDelay.Set(rep.AverageDelay)
	} else {
		r.AverageDelay.Set(math.NaN())
	}
	r.Demands.WithLabelValues("routed").Set(float64(len(rep.Routed)))
	r.Demands.WithLabelValues("skipped").Set(float64(len(rep.Skipped)))
	r.InfeasibleNodes.Set(float64(len(rep.InfeasibleNodes)))

	r.Costs.WithLabelValues("deployed_routers").Set(rep.Costs.DeployedRouters)
	r.Costs.WithLabelValues("deployed_cables").Set(rep.Costs.DeployedCables)
	r.Costs.WithLabelValues("minimum_routers").Set(rep.Costs.MinimumRouters)
}

// linkLabels identifies a link by its name and its endpoints, since link names
// are not unique.
func linkLabels(l *network.Link) prometheus.Labels {
	return prometheus.Labels{
		"link":      l.Name,
		"endpoints": l.Node1.Name + "-" + l.Node2.Name,
	}
}

// WriteTextfile writes the gauges to path in the text exposition format, for
// the node exporter's textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
