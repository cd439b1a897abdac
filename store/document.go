// Package store reads and writes network plans as JSON or YAML documents.
//
// A document holds five collections which are resolved in order: routers and
// cables first, then nodes (which refer to routers by model name), then
// connections (which refer to nodes and cables by name), and finally the
// traffic matrix, whose endpoints are not checked against the nodes.
package store

// Document is the persisted layout of a network plan.
type Document struct {
	Routers       []RouterRecord     `json:"routers" yaml:"routers"`
	Cables        []CableRecord      `json:"cables" yaml:"cables"`
	Nodes         []NodeRecord       `json:"nodes" yaml:"nodes"`
	Connections   []ConnectionRecord `json:"connections" yaml:"connections"`
	TrafficMatrix []DemandRecord     `json:"traffic_matrix" yaml:"traffic_matrix"`

	// GlobalPacketSize is only found in legacy documents, where it applies to
	// every demand. See Migrate.
	GlobalPacketSize *float64 `json:"global_packet_size,omitempty" yaml:"global_packet_size,omitempty"`
}

type RouterRecord struct {
	ModelName string  `json:"model_name" yaml:"model_name" validate:"required"`
	Capacity  int     `json:"capacity" yaml:"capacity" validate:"gte=0"`
	Cost      float64 `json:"cost" yaml:"cost" validate:"gte=0"`
}

type CableRecord struct {
	CableName   string  `json:"cable_name" yaml:"cable_name" validate:"required"`
	CostPerUnit float64 `json:"cost_per_unit" yaml:"cost_per_unit" validate:"gte=0"`
	Capacity    int     `json:"capacity" yaml:"capacity" validate:"gte=0"`
}

// NodeRecord is a node. A null or empty RouterModelName means no router is
// assigned.
type NodeRecord struct {
	Name            string  `json:"name" yaml:"name" validate:"required"`
	X               float64 `json:"x" yaml:"x"`
	Y               float64 `json:"y" yaml:"y"`
	RouterModelName *string `json:"router_model_name" yaml:"router_model_name"`
}

type ConnectionRecord struct {
	Name           string  `json:"name" yaml:"name"`
	Node1          string  `json:"node1" yaml:"node1" validate:"required"`
	Node2          string  `json:"node2" yaml:"node2" validate:"required,nefield=Node1"`
	CableName      string  `json:"cable_name" yaml:"cable_name" validate:"required"`
	Distance       float64 `json:"distance" yaml:"distance" validate:"gte=0"`
	ConnectionCost float64 `json:"connection_cost" yaml:"connection_cost"`
}

// DemandRecord is an entry of the traffic matrix. PacketSize is nil in legacy
// documents.
type DemandRecord struct {
	Src        string   `json:"src" yaml:"src"`
	Dst        string   `json:"dst" yaml:"dst"`
	Traffic    float64  `json:"traffic" yaml:"traffic"`
	PacketSize *float64 `json:"packet_size,omitempty" yaml:"packet_size,omitempty"`
}
