package core

import "github.com/prahaladd/graphcore/document"

// VertexProperty is a single named property owned by a vertex: the
// (owner_id, name) pair identifies it, and the value is an opaque
// structured document.
type VertexProperty struct {
	OwnerID Identifier
	Name    string
	Value   document.Value
}

// NewVertexProperty constructs a vertex property value.
func NewVertexProperty(ownerID Identifier, name string, value document.Value) VertexProperty {
	return VertexProperty{OwnerID: ownerID, Name: name, Value: value}
}

// EdgeProperty is a single named property owned by an edge, keyed by
// the edge's full composite key.
type EdgeProperty struct {
	OwnerKey EdgeKey
	Name     string
	Value    document.Value
}

// NewEdgeProperty constructs an edge property value.
func NewEdgeProperty(ownerKey EdgeKey, name string, value document.Value) EdgeProperty {
	return EdgeProperty{OwnerKey: ownerKey, Name: name, Value: value}
}
