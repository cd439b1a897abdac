package network

import (
	"errors"
	"fmt"
)

// Sentinel errors. Structured errors returned by this package match them with
// errors.Is.
var (
	ErrInvalidDemand     = errors.New("invalid demand")
	ErrDanglingReference = errors.New("dangling reference")
	ErrDuplicateNode     = errors.New("duplicate node name")
	ErrDuplicateLink     = errors.New("duplicate link between nodes")
	ErrSelfLink          = errors.New("link endpoints must be distinct nodes")
	ErrNilReference      = errors.New("nil reference")
)

// DemandError reports a demand rejected by DemandSet.Set.
type DemandError struct {
	Source string
	Target string
	Field  string // "traffic" or "packet_size"
	Value  float64
}

func (e *DemandError) Error() string {
	return fmt.Sprintf("%s: demand %s -> %s: %s must be non-negative, got %v",
		ErrInvalidDemand, e.Source, e.Target, e.Field, e.Value)
}

func (e *DemandError) Is(target error) bool {
	return target == ErrInvalidDemand
}

// ReferenceError reports a record that refers to a router, cable or node name
// that does not exist.
type ReferenceError struct {
	Kind    string // kind of the referring record, e.g. "node" or "connection"
	Record  string // name of the referring record
	Field   string // field holding the reference, e.g. "cable_name"
	Missing string // name that could not be resolved
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s %q not found",
		ErrDanglingReference, e.Kind, e.Record, e.Field, e.Missing)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}
