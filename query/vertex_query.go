package query

import (
	"time"

	"github.com/prahaladd/graphcore/core"
)

// VertexQuery is a query for vertices: the sum type closed under piping
// from an EdgeQuery. Every concrete variant below implements it.
type VertexQuery interface {
	isVertexQuery()
}

// AllVertices takes the first Limit vertices in identifier order. If
// StartID is non-nil, the scan skips to the first vertex whose id is
// greater than or equal to it.
type AllVertices struct {
	StartID *core.Identifier
	Limit   uint32
}

func (AllVertices) isVertexQuery() {}

// NewAllVertices builds the unbounded All query, equivalent to
// VertexQuery::All{start_id: None, limit} in the original algebra.
func NewAllVertices(limit uint32) AllVertices {
	return AllVertices{Limit: limit}
}

// From sets the inclusive lower bound on vertex id.
func (q AllVertices) From(startID core.Identifier) AllVertices {
	q.StartID = &startID
	return q
}

// VerticesByID returns vertices for each id given, in the order given,
// silently dropping ids with no matching vertex.
type VerticesByID struct {
	IDs []core.Identifier
}

func (VerticesByID) isVertexQuery() {}

// NewVerticesByID builds a VerticesByID query over the given ids.
func NewVerticesByID(ids ...core.Identifier) VerticesByID {
	return VerticesByID{IDs: ids}
}

// VertexPipe lifts an EdgeQuery to a VertexQuery: it evaluates the inner
// edge query, projects each result to its outbound or inbound endpoint
// (per Direction), and takes the first Limit raw endpoint ids before
// hydrating them into vertices. Limit does not propagate from the
// inner query - every pipe declares its own.
type VertexPipe struct {
	EdgeQuery EdgeQuery
	Direction EdgeDirection
	Limit     uint32
}

func (VertexPipe) isVertexQuery() {}

// OutboundVertices lifts an edge query to the vertex query of its
// outbound endpoints.
func OutboundVertices(eq EdgeQuery, limit uint32) VertexPipe {
	return VertexPipe{EdgeQuery: eq, Direction: Outbound, Limit: limit}
}

// InboundVertices lifts an edge query to the vertex query of its
// inbound endpoints.
func InboundVertices(eq EdgeQuery, limit uint32) VertexPipe {
	return VertexPipe{EdgeQuery: eq, Direction: Inbound, Limit: limit}
}

// OutboundEdges pipes a vertex query into the edge query of its
// outbound edges, optionally narrowed by type and creation-time bounds.
// Mirrors VertexQuery::outbound_edges in the original algebra.
func OutboundEdges(vq VertexQuery, typeFilter *core.Type, highFilter, lowFilter *time.Time, limit uint32) EdgePipe {
	return EdgePipe{
		VertexQuery: vq,
		Direction:   Outbound,
		TypeFilter:  typeFilter,
		HighFilter:  highFilter,
		LowFilter:   lowFilter,
		Limit:       limit,
	}
}

// InboundEdges pipes a vertex query into the edge query of its inbound
// edges, optionally narrowed by type and creation-time bounds.
func InboundEdges(vq VertexQuery, typeFilter *core.Type, highFilter, lowFilter *time.Time, limit uint32) EdgePipe {
	return EdgePipe{
		VertexQuery: vq,
		Direction:   Inbound,
		TypeFilter:  typeFilter,
		HighFilter:  highFilter,
		LowFilter:   lowFilter,
		Limit:       limit,
	}
}
