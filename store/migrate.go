package store

import "fmt"

// Migrate rewrites a legacy document in place. Legacy documents carry a single
// global_packet_size applied to every demand; Migrate copies it into each
// traffic matrix entry and clears it. It returns true if the document was
// modified.
//
// A non-legacy document whose entries lack a packet_size is rejected.
func Migrate(doc *Document) (bool, error) {
	if doc.GlobalPacketSize == nil {
		for i, rec := range doc.TrafficMatrix {
			if rec.PacketSize == nil {
				return false, &RecordError{
					Kind:   "traffic_matrix",
					Index:  i,
					Reason: "packet_size: field is required",
				}
			}
		}
		return false, nil
	}

	size := *doc.GlobalPacketSize
	if !(size >= 0) {
		return false, fmt.Errorf("%w: global_packet_size must be non-negative, got %v", ErrInvalidRecord, size)
	}
	for i := range doc.TrafficMatrix {
		ps := size
		doc.TrafficMatrix[i].PacketSize = &ps
	}
	doc.GlobalPacketSize = nil
	return true, nil
}
