package datastore

import (
	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/document"
	"github.com/prahaladd/graphcore/query"
)

// Transaction is the atomic operation surface of a graph backend. Each
// method here is atomic with respect to concurrent transactions on the
// same datastore - "transaction" means "one atomic call", not an ACID
// multi-statement unit (spec §5).
type Transaction interface {
	// CreateVertex inserts v. Returns false if v.ID already exists;
	// the existing vertex (and its type) is left unchanged.
	CreateVertex(v core.Vertex) (bool, error)

	// GetVertices evaluates q and returns the matching vertices.
	GetVertices(q query.VertexQuery) ([]core.Vertex, error)

	// DeleteVertices evaluates q and cascades: every matched vertex,
	// every edge naming it as either endpoint, and every vertex
	// property it owns are removed.
	DeleteVertices(q query.VertexQuery) error

	// GetVertexCount returns the total number of vertices.
	GetVertexCount() (uint64, error)

	// CreateEdge inserts or refreshes the edge at key. Returns false
	// iff either endpoint is not a known vertex; the edge is not
	// created in that case. If the edge already exists, its
	// CreatedDatetime is refreshed to the current time.
	CreateEdge(key core.EdgeKey) (bool, error)

	// GetEdges evaluates q and returns the matching edges.
	GetEdges(q query.EdgeQuery) ([]core.Edge, error)

	// DeleteEdges evaluates q and cascades to edge properties.
	DeleteEdges(q query.EdgeQuery) error

	// GetEdgeCount returns the number of edges incident to id in the
	// given direction, optionally narrowed to a single type.
	GetEdgeCount(id core.Identifier, typeFilter *core.Type, direction query.EdgeDirection) (uint64, error)

	// GetVertexProperties evaluates q and returns, for each matched
	// vertex that has a property named name, its value. Vertices
	// without the property are silently dropped, not null-padded.
	GetVertexProperties(q query.VertexQuery, name string) ([]core.VertexProperty, error)

	// SetVertexProperties evaluates q and upserts (vertex, name) ->
	// value for every matched vertex.
	SetVertexProperties(q query.VertexQuery, name string, value document.Value) error

	// DeleteVertexProperties evaluates q and removes (vertex, name)
	// for every matched vertex.
	DeleteVertexProperties(q query.VertexQuery, name string) error

	// GetEdgeProperties evaluates q and returns, for each matched edge
	// that has a property named name, its value.
	GetEdgeProperties(q query.EdgeQuery, name string) ([]core.EdgeProperty, error)

	// SetEdgeProperties evaluates q and upserts (edge, name) -> value
	// for every matched edge.
	SetEdgeProperties(q query.EdgeQuery, name string, value document.Value) error

	// DeleteEdgeProperties evaluates q and removes (edge, name) for
	// every matched edge.
	DeleteEdgeProperties(q query.EdgeQuery, name string) error
}
