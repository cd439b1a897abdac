package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rhartert/netplan/network"
	"github.com/rhartert/netplan/planner"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printPaths(w io.Writer, net *network.Network, r *planner.Report) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "SOURCE\tTARGET\tPATH")
	for _, src := range net.Nodes {
		for _, dst := range net.Nodes {
			if src.Name == dst.Name {
				continue
			}
			p := r.Paths.Path(src.Name, dst.Name)
			if p.IsEmpty() {
				fmt.Fprintf(tw, "%s\t%s\t(unreachable)\n", src.Name, dst.Name)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", src.Name, dst.Name, p)
		}
	}
	return tw.Flush()
}

func printFlows(w io.Writer, r *planner.Report) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "LINK\tENDPOINTS\tFLOW\tPACKET\tUTIL\tDELAY")
	for _, lr := range r.Links {
		fmt.Fprintf(tw, "%s\t%s - %s\t%g\t%g\t%.2f%%\t%s\n",
			lr.Link.Name, lr.Link.Node1.Name, lr.Link.Node2.Name,
			lr.Flow, lr.Packet, 100*lr.Utilization, lr.Delay)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.HasAverageDelay {
		fmt.Fprintf(w, "average delay: %.4f\n", r.AverageDelay)
	} else {
		fmt.Fprintln(w, "average delay: ∞")
	}
	if r.MostUtilized >= 0 {
		lr := r.Links[r.MostUtilized]
		fmt.Fprintf(w, "most utilized: %s (%.2f%%)\n", lr.Link.Name, 100*lr.Utilization)
	}

	tw = newTable(w)
	fmt.Fprintln(tw, "SOURCE\tTARGET\tTRAFFIC\tPATH")
	for _, rd := range r.Routed {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\n", rd.Source, rd.Target, rd.Traffic, rd.Path)
	}
	for _, p := range r.Skipped {
		fmt.Fprintf(tw, "%s\t%s\t-\t(not routed)\n", p.Source, p.Target)
	}
	return tw.Flush()
}

func printResources(w io.Writer, net *network.Network, r *planner.Report) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NODE\tOUTBOUND\tMIN ROUTER\tCOST")
	for _, n := range net.Nodes {
		outbound := 0.0
		if net.Demands != nil {
			outbound = net.Demands.OutboundTraffic(n.Name)
		}
		if router := r.MinRouterPerNode[n.Name]; router != nil {
			fmt.Fprintf(tw, "%s\t%g\t%s\t%g\n", n.Name, outbound, router.ModelName, router.Cost)
		} else {
			fmt.Fprintf(tw, "%s\t%g\t(none)\t-\n", n.Name, outbound)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.MinRouter != nil {
		fmt.Fprintf(w, "min router (total traffic): %s\n", r.MinRouter.ModelName)
	} else {
		fmt.Fprintln(w, "min router (total traffic): (none)")
	}
	if r.MinCable != nil {
		fmt.Fprintf(w, "min cable (total traffic):  %s\n", r.MinCable.Name)
	} else {
		fmt.Fprintln(w, "min cable (total traffic):  (none)")
	}
	return nil
}

func printCosts(w io.Writer, r *planner.Report) error {
	fmt.Fprintf(w, "deployed routers: %.2f\n", r.Costs.DeployedRouters)
	fmt.Fprintf(w, "deployed cables:  %.2f\n", r.Costs.DeployedCables)
	fmt.Fprintf(w, "minimum routers:  %.2f\n", r.Costs.MinimumRouters)
	return nil
}

func printProbe(w io.Writer, d network.Demand, probed []planner.LinkReport, routed bool) error {
	if !routed {
		_, err := fmt.Fprintf(w, "demand %s -> %s cannot be routed\n", d.Source, d.Target)
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "LINK\tFLOW\tPACKET\tUTIL\tDELAY")
	for _, lr := range probed {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%.2f%%\t%s\n",
			lr.Link.Name, lr.Flow, lr.Packet, 100*lr.Utilization, lr.Delay)
	}
	return tw.Flush()
}
