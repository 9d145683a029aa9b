package query

import (
	"time"

	"github.com/prahaladd/graphcore/core"
)

// EdgeQuery is a query for edges: the sum type closed under piping
// from a VertexQuery.
type EdgeQuery interface {
	isEdgeQuery()
}

// EdgesByKey returns the edge for each key given that exists.
type EdgesByKey struct {
	Keys []core.EdgeKey
}

func (EdgesByKey) isEdgeQuery() {}

// NewEdgesByKey builds an EdgesByKey query over the given keys.
func NewEdgesByKey(keys ...core.EdgeKey) EdgesByKey {
	return EdgesByKey{Keys: keys}
}

// EdgePipe lifts a VertexQuery to an EdgeQuery: it evaluates the inner
// vertex query and, for each result vertex, selects incident edges in
// Direction, optionally narrowed by TypeFilter (exact match) and the
// inclusive [LowFilter, HighFilter] bound on creation time. Limit
// terminates accumulation as soon as it is reached.
type EdgePipe struct {
	VertexQuery VertexQuery
	Direction   EdgeDirection
	TypeFilter  *core.Type
	HighFilter  *time.Time
	LowFilter   *time.Time
	Limit       uint32
}

func (EdgePipe) isEdgeQuery() {}
