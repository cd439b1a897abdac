package network

import "math"

// FlowChange is a link and its flow and packet size before any change was
// applied to the current state.
type FlowChange struct {
	Link           int
	PreviousFlow   float64
	PreviousPacket float64
}

// LinkState is a reversible structure which represents the traffic carried by
// each link of a network: the accumulated flow and the largest packet size
// among the demands routed over the link. It keeps track of changes applied to
// its links and can efficiently undo them.
type LinkState struct {
	flows   []float64
	packets []float64

	// Stack of changes used to restore the last persisted state.
	changes  []FlowChange
	nChanges int

	// A link has been changed in the current state if savedAt[link] equals
	// timestamp. Incrementing the timestamp marks all links as unchanged in
	// O(1).
	savedAt   []uint
	timestamp uint
}

// NewLinkState initializes and returns a new LinkState where all links carry
// no traffic.
func NewLinkState(nLinks int) *LinkState {
	return &LinkState{
		flows:     make([]float64, nLinks),
		packets:   make([]float64, nLinks),
		changes:   make([]FlowChange, nLinks),
		nChanges:  0,
		savedAt:   make([]uint, nLinks),
		timestamp: 1, // must be greater than the zero values in savedAt
	}
}

// Flow returns the current flow on the link.
func (s *LinkState) Flow(link int) float64 {
	return s.flows[link]
}

// Packet returns the largest packet size routed over the link.
func (s *LinkState) Packet(link int) float64 {
	return s.packets[link]
}

// AddFlow adds traffic to the link's flow and raises the link's packet size
// to packet if it is larger. The change is registered so that it can be
// undone if needed.
func (s *LinkState) AddFlow(link int, traffic float64, packet float64) {
	if s.savedAt[link] != s.timestamp {
		s.changes[s.nChanges] = FlowChange{link, s.flows[link], s.packets[link]}
		s.nChanges += 1
		s.savedAt[link] = s.timestamp
	}
	s.flows[link] += traffic
	if packet > s.packets[link] {
		s.packets[link] = packet
	}
}

// PersistChanges persists all the changes as the "new" state. New changes can
// be accumulated (and undone) from this point.
func (s *LinkState) PersistChanges() {
	s.nChanges = 0
	s.incrTimestamp()
}

// UndoChanges undoes all the changes since the last time PersistChanges was
// called. This operation is done in O(C) where C is the number of links that
// have been changed.
func (s *LinkState) UndoChanges() {
	for s.nChanges > 0 {
		s.nChanges -= 1
		fc := s.changes[s.nChanges]
		s.flows[fc.Link] = fc.PreviousFlow
		s.packets[fc.Link] = fc.PreviousPacket
	}
	s.incrTimestamp()
}

// Changes returns the links that have been changed since the last time
// changes were persisted.
//
// Important: the slice is a view on one of the state's internal structure and
// should only be used in read-only operations.
func (s *LinkState) Changes() []FlowChange {
	return s.changes[:s.nChanges]
}

// incrTimestamp safely increments the value of the timestamp by resetting the
// savedAt slice and the timestamp if it overflows.
func (s *LinkState) incrTimestamp() {
	if s.timestamp != math.MaxUint {
		s.timestamp += 1
		return
	}
	s.timestamp = 1
	for i := range s.savedAt {
		s.savedAt[i] = 0
	}
}
