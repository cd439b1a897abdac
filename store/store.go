package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rhartert/netplan/network"
	"gopkg.in/yaml.v3"
)

// Format is the serialization format of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns the document format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Encode converts a network into its persisted layout. Link distances and
// connection costs are copied as they are, not recomputed.
func Encode(net *network.Network) *Document {
	doc := &Document{
		Routers:       make([]RouterRecord, 0, len(net.Routers)),
		Cables:        make([]CableRecord, 0, len(net.Cables)),
		Nodes:         make([]NodeRecord, 0, len(net.Nodes)),
		Connections:   make([]ConnectionRecord, 0, len(net.Links)),
		TrafficMatrix: []DemandRecord{},
	}
	for _, r := range net.Routers {
		doc.Routers = append(doc.Routers, RouterRecord{
			ModelName: r.ModelName,
			Capacity:  r.Capacity,
			Cost:      r.Cost,
		})
	}
	for _, c := range net.Cables {
		doc.Cables = append(doc.Cables, CableRecord{
			CableName:   c.Name,
			CostPerUnit: c.CostPerUnit,
			Capacity:    c.Capacity,
		})
	}
	for _, n := range net.Nodes {
		rec := NodeRecord{Name: n.Name, X: n.X, Y: n.Y}
		if n.Router != nil {
			model := n.Router.ModelName
			rec.RouterModelName = &model
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, l := range net.Links {
		doc.Connections = append(doc.Connections, ConnectionRecord{
			Name:           l.Name,
			Node1:          l.Node1.Name,
			Node2:          l.Node2.Name,
			CableName:      l.Cable.Name,
			Distance:       l.Distance,
			ConnectionCost: l.ConnectionCost,
		})
	}
	if net.Demands != nil {
		for _, d := range net.Demands.All() {
			ps := d.PacketSize
			doc.TrafficMatrix = append(doc.TrafficMatrix, DemandRecord{
				Src:        d.Source,
				Dst:        d.Target,
				Traffic:    d.Traffic,
				PacketSize: &ps,
			})
		}
	}
	return doc
}

// Decode builds a network from a document. References are resolved in order
// (routers, cables, nodes, connections, traffic matrix) and the first error
// aborts the whole decoding: no partial network is returned.
//
// Legacy documents must be migrated first, see Migrate.
func Decode(doc *Document) (*network.Network, error) {
	net := network.New()

	routers := network.NewIndex(func(r *network.Router) string { return r.ModelName })
	for i, rec := range doc.Routers {
		if err := validateRecord("router", i, &rec); err != nil {
			return nil, err
		}
		r := &network.Router{ModelName: rec.ModelName, Capacity: rec.Capacity, Cost: rec.Cost}
		if !routers.Add(r) {
			return nil, &RecordError{Kind: "router", Index: i, Reason: fmt.Sprintf("duplicate model_name %q", rec.ModelName)}
		}
	}
	net.Routers = routers.Items()

	cables := network.NewIndex(func(c *network.Cable) string { return c.Name })
	for i, rec := range doc.Cables {
		if err := validateRecord("cable", i, &rec); err != nil {
			return nil, err
		}
		c := &network.Cable{Name: rec.CableName, CostPerUnit: rec.CostPerUnit, Capacity: rec.Capacity}
		if !cables.Add(c) {
			return nil, &RecordError{Kind: "cable", Index: i, Reason: fmt.Sprintf("duplicate cable_name %q", rec.CableName)}
		}
	}
	net.Cables = cables.Items()

	nodes := network.NewIndex(func(n *network.Node) string { return n.Name })
	for i, rec := range doc.Nodes {
		if err := validateRecord("node", i, &rec); err != nil {
			return nil, err
		}
		n := &network.Node{Name: rec.Name, X: rec.X, Y: rec.Y}
		// An empty model name, like null, means no router is assigned.
		if rec.RouterModelName != nil && *rec.RouterModelName != "" {
			r, ok := routers.Lookup(*rec.RouterModelName)
			if !ok {
				return nil, &network.ReferenceError{
					Kind:    "node",
					Record:  rec.Name,
					Field:   "router_model_name",
					Missing: *rec.RouterModelName,
				}
			}
			n.Router = r
		}
		if !nodes.Add(n) {
			return nil, fmt.Errorf("node #%d: %w: %q", i, network.ErrDuplicateNode, rec.Name)
		}
	}
	net.Nodes = nodes.Items()

	for i, rec := range doc.Connections {
		if err := validateRecord("connection", i, &rec); err != nil {
			return nil, err
		}
		l := &network.Link{
			Name:           rec.Name,
			Distance:       rec.Distance,
			ConnectionCost: rec.ConnectionCost,
		}
		var ok bool
		if l.Node1, ok = nodes.Lookup(rec.Node1); !ok {
			return nil, &network.ReferenceError{Kind: "connection", Record: rec.Name, Field: "node1", Missing: rec.Node1}
		}
		if l.Node2, ok = nodes.Lookup(rec.Node2); !ok {
			return nil, &network.ReferenceError{Kind: "connection", Record: rec.Name, Field: "node2", Missing: rec.Node2}
		}
		if l.Cable, ok = cables.Lookup(rec.CableName); !ok {
			return nil, &network.ReferenceError{Kind: "connection", Record: rec.Name, Field: "cable_name", Missing: rec.CableName}
		}
		net.Links = append(net.Links, l)
	}

	for i, rec := range doc.TrafficMatrix {
		if rec.PacketSize == nil {
			return nil, &RecordError{Kind: "traffic_matrix", Index: i, Reason: "packet_size: field is required"}
		}
		if err := net.Demands.Set(rec.Src, rec.Dst, rec.Traffic, *rec.PacketSize); err != nil {
			return nil, fmt.Errorf("traffic_matrix #%d: %w", i, err)
		}
	}

	return net, nil
}

// Write encodes the network and writes it to w in the given format.
func Write(w io.Writer, net *network.Network, format Format) error {
	doc := Encode(net)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadDocument parses a document from r without resolving its references.
func ReadDocument(r io.Reader, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(doc); err != nil {
			return nil, fmt.Errorf("failed to parse json document: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse yaml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc, nil
}

// Read parses a document from r, migrates it if it is a legacy document and
// decodes it into a network. The returned boolean is true if the document was
// migrated.
func Read(r io.Reader, format Format) (*network.Network, bool, error) {
	doc, err := ReadDocument(r, format)
	if err != nil {
		return nil, false, err
	}
	migrated, err := Migrate(doc)
	if err != nil {
		return nil, false, err
	}
	net, err := Decode(doc)
	if err != nil {
		return nil, false, err
	}
	return net, migrated, nil
}

// LoadFile reads a network from the file at path. The format is derived from
// the file extension.
func LoadFile(path string) (*network.Network, bool, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, false, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()
	return Read(f, format)
}

// SaveFile writes the network to the file at path. The file is first written
// to a temporary file in the same directory, then renamed, so that path never
// holds a partially written document.
func SaveFile(path string, net *network.Network) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set document permissions: %w", err)
	}
	if err := Write(tmp, net, format); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close document: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename document: %w", err)
	}
	return nil
}
