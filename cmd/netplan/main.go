package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rhartert/netplan/metrics"
	"github.com/rhartert/netplan/network"
	"github.com/rhartert/netplan/planner"
	"github.com/rhartert/netplan/store"
	"github.com/sirupsen/logrus"
)

var flagModelFile = flag.String(
	"model",
	"",
	"Path to the network model (.json, .yaml or .yml)",
)

var flagConfigFile = flag.String(
	"config",
	"netplan.toml",
	"Path to the TOML configuration file (defaults are used if missing)",
)

var flagCommand = flag.String(
	"command",
	"report",
	"Command to run: paths, flows, resources, costs, report, probe or convert",
)

var flagOutFile = flag.String(
	"out",
	"",
	"Output model file for the convert command",
)

var flagSource = flag.String(
	"src",
	"",
	"Source node of the probed demand",
)

var flagTarget = flag.String(
	"dst",
	"",
	"Target node of the probed demand",
)

var flagTraffic = flag.Float64(
	"traffic",
	0,
	"Traffic of the probed demand",
)

var flagPacketSize = flag.Float64(
	"packet_size",
	0,
	"Packet size of the probed demand",
)

var commands = map[string]bool{
	"paths":     true,
	"flows":     true,
	"resources": true,
	"costs":     true,
	"report":    true,
	"probe":     true,
	"convert":   true,
}

func validateFlags() error {
	if *flagModelFile == "" {
		return fmt.Errorf("missing model file")
	}
	if !commands[*flagCommand] {
		return fmt.Errorf("unknown command %q", *flagCommand)
	}
	if *flagCommand == "convert" && *flagOutFile == "" {
		return fmt.Errorf("missing output file for convert")
	}
	if *flagCommand == "probe" {
		if *flagSource == "" || *flagTarget == "" {
			return fmt.Errorf("probe requires both -src and -dst")
		}
		if n := *flagTraffic; !(n >= 0) {
			return fmt.Errorf("traffic must be non-negative, got: %f", n)
		}
		if n := *flagPacketSize; !(n >= 0) {
			return fmt.Errorf("packet size must be non-negative, got: %f", n)
		}
	}
	return nil
}

type runner struct {
	cfg    *Config
	logger logrus.FieldLogger
	out    io.Writer

	model   string         // model file to load
	outFile string         // target of the convert command
	probe   network.Demand // demand of the probe command
}

func (r *runner) run(command string) error {
	start := time.Now()
	net, migrated, err := store.LoadFile(r.model)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}
	r.logger.WithFields(logrus.Fields{
		"file":  r.model,
		"nodes": len(net.Nodes),
		"links": len(net.Links),
	}).Info("Model loaded")
	if migrated {
		r.logger.Warn("Legacy global_packet_size migrated to per-demand packet sizes")
	}

	if command == "convert" {
		if err := store.SaveFile(r.outFile, net); err != nil {
			return fmt.Errorf("failed to save model: %w", err)
		}
		r.logger.WithField("file", r.outFile).Info("Model saved")
		return nil
	}

	pcfg, err := r.cfg.plannerConfig()
	if err != nil {
		return err
	}
	report, err := planner.New(pcfg, r.logger).Plan(net)
	if err != nil {
		return fmt.Errorf("failed to plan network: %w", err)
	}

	if path := r.cfg.Metrics.Textfile; path != "" {
		reg := metrics.NewRegistry()
		reg.Observe(report)
		if err := reg.WriteTextfile(path); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	switch command {
	case "paths":
		err = printPaths(r.out, net, report)
	case "flows":
		err = printFlows(r.out, report)
	case "resources":
		err = printResources(r.out, net, report)
	case "costs":
		err = printCosts(r.out, report)
	case "probe":
		probed, routed, perr := report.Probe(r.probe)
		if perr != nil {
			return perr
		}
		err = printProbe(r.out, r.probe, probed, routed)
	case "report":
		for _, section := range []func() error{
			func() error { return printPaths(r.out, net, report) },
			func() error { return printFlows(r.out, report) },
			func() error { return printResources(r.out, net, report) },
			func() error { return printCosts(r.out, report) },
		} {
			if err = section(); err != nil {
				break
			}
			fmt.Fprintln(r.out)
		}
	}
	if err != nil {
		return err
	}

	r.logger.WithField("elapsed_ms", time.Since(start).Milliseconds()).Debug("Command done")
	return nil
}

func main() {
	flag.Parse()
	if err := validateFlags(); err != nil {
		log.Fatalf("Error validating flags: %s", err)
	}

	cfg, err := loadConfig(*flagConfigFile)
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}
	logger, closer, err := setupLogger(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("Error setting up logger: %s", err)
	}
	defer closer.Close()

	r := &runner{
		cfg:     cfg,
		logger:  logger,
		out:     os.Stdout,
		model:   *flagModelFile,
		outFile: *flagOutFile,
		probe: network.Demand{
			Pair:       network.Pair{Source: *flagSource, Target: *flagTarget},
			Traffic:    *flagTraffic,
			PacketSize: *flagPacketSize,
		},
	}
	if err := r.run(*flagCommand); err != nil {
		logger.Errorf("Command %s failed: %s", *flagCommand, err)
		closer.Close()
		os.Exit(1)
	}
}
