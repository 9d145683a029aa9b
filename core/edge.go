package core

import "time"

// EdgeKey is the composite (outbound_id, type, inbound_id) that is the
// sole identity of an edge: there is at most one edge per key. Ordered
// lexicographically in that field order - this is what makes a
// contiguous outbound-edge range scan possible (see the edge map of
// package memory's engine).
type EdgeKey struct {
	OutboundID Identifier
	T          Type
	InboundID  Identifier
}

// NewEdgeKey constructs an edge key from its three components.
func NewEdgeKey(outboundID Identifier, t Type, inboundID Identifier) EdgeKey {
	return EdgeKey{OutboundID: outboundID, T: t, InboundID: inboundID}
}

// Compare orders edge keys by (OutboundID, T, InboundID), matching the
// wire/storage ordering invariant the engine depends on.
func (k EdgeKey) Compare(other EdgeKey) int {
	if c := k.OutboundID.Compare(other.OutboundID); c != 0 {
		return c
	}
	if c := k.T.Compare(other.T); c != 0 {
		return c
	}
	return k.InboundID.Compare(other.InboundID)
}

// Edge pairs an EdgeKey with the time it was created. Creation time is
// assigned by the engine at insertion and refreshed on duplicate
// creation; it is never set directly by a caller.
type Edge struct {
	Key             EdgeKey
	CreatedDatetime time.Time
}

// NewEdge constructs an edge value for a given key and creation time.
func NewEdge(key EdgeKey, createdDatetime time.Time) Edge {
	return Edge{Key: key, CreatedDatetime: createdDatetime}
}
