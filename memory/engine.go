package memory

import (
	"time"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/document"
	"github.com/prahaladd/graphcore/query"
)

// vertexValue and edgeValue are the engine's internal result shapes,
// kept separate from core.Vertex/core.Edge so query evaluation can stay
// free of the datastore package's Transaction interface.
type vertexValue struct {
	ID core.Identifier
	T  core.Type
}

type edgeValue struct {
	Key             core.EdgeKey
	CreatedDatetime time.Time
}

// engine holds all of the datastore's state in four ordered maps. It
// is unexported and un-synchronized on its own - every caller must
// hold internalDatastore's single RWMutex for the duration of a call.
// This mirrors IndraDB's InternalMemoryDatastore: the whole state lives
// behind one lock, rather than one lock per map, because per-map locks
// would create a lock-ordering hazard across queries that span
// multiple maps (e.g. a cascading vertex delete touches all four).
type engine struct {
	vertices         *orderedMap[core.Identifier, core.Type]
	edges            *orderedMap[core.EdgeKey, time.Time]
	vertexProperties *orderedMap[vertexPropertyKey, document.Value]
	edgeProperties   *orderedMap[edgePropertyKey, document.Value]
}

func newEngine() *engine {
	return &engine{
		vertices:         newOrderedMap[core.Identifier, core.Type](compareIdentifiers),
		edges:            newOrderedMap[core.EdgeKey, time.Time](compareEdgeKeys),
		vertexProperties: newOrderedMap[vertexPropertyKey, document.Value](compareVertexPropertyKeys),
		edgeProperties:   newOrderedMap[edgePropertyKey, document.Value](compareEdgePropertyKeys),
	}
}

// getVertexValuesByQuery evaluates a VertexQuery against the current
// state. Grounded on InternalMemoryDatastore::get_vertex_values_by_query
// in lib/src/memory/datastore.rs.
//
// Pipe evaluation applies Limit to the raw endpoint ids returned by the
// inner edge query BEFORE hydrating them into vertices (looking them
// up in e.vertices). This means a pipe whose inner edges point at
// missing vertices can return fewer than Limit results even when more
// matching vertices exist further down the edge list. Spec §9 flags
// this as an open question with no clear intended-vs-bug answer in the
// source; this replicates the observed behavior exactly rather than
// "fixing" it.
func (e *engine) getVertexValuesByQuery(q query.VertexQuery) ([]vertexValue, error) {
	switch vq := q.(type) {
	case query.AllVertices:
		var results []vertexValue
		start := core.MinIdentifier
		if vq.StartID != nil {
			start = *vq.StartID
		}
		e.vertices.Range(start, func(id core.Identifier, t core.Type) bool {
			if uint32(len(results)) >= vq.Limit {
				return false
			}
			results = append(results, vertexValue{ID: id, T: t})
			return uint32(len(results)) < vq.Limit
		})
		return results, nil

	case query.VerticesByID:
		results := make([]vertexValue, 0, len(vq.IDs))
		for _, id := range vq.IDs {
			if t, ok := e.vertices.Get(id); ok {
				results = append(results, vertexValue{ID: id, T: t})
			}
		}
		return results, nil

	case query.VertexPipe:
		edgeValues, err := e.getEdgeValuesByQuery(vq.EdgeQuery)
		if err != nil {
			return nil, err
		}

		ids := make([]core.Identifier, 0, len(edgeValues))
		for i, ev := range edgeValues {
			if uint32(i) >= vq.Limit {
				break
			}
			if vq.Direction == query.Outbound {
				ids = append(ids, ev.Key.OutboundID)
			} else {
				ids = append(ids, ev.Key.InboundID)
			}
		}

		results := make([]vertexValue, 0, len(ids))
		for _, id := range ids {
			if t, ok := e.vertices.Get(id); ok {
				results = append(results, vertexValue{ID: id, T: t})
			}
		}
		return results, nil

	default:
		return nil, core.NewValidationError("unknown vertex query variant", nil)
	}
}

// getEdgeValuesByQuery evaluates an EdgeQuery against the current
// state. Grounded on
// InternalMemoryDatastore::get_edge_values_by_query in
// lib/src/memory/datastore.rs.
func (e *engine) getEdgeValuesByQuery(q query.EdgeQuery) ([]edgeValue, error) {
	switch eq := q.(type) {
	case query.EdgesByKey:
		results := make([]edgeValue, 0, len(eq.Keys))
		for _, key := range eq.Keys {
			if ts, ok := e.edges.Get(key); ok {
				results = append(results, edgeValue{Key: key, CreatedDatetime: ts})
			}
		}
		return results, nil

	case query.EdgePipe:
		if eq.Limit == 0 {
			return nil, nil
		}

		vertexValues, err := e.getVertexValuesByQuery(eq.VertexQuery)
		if err != nil {
			return nil, err
		}

		var results []edgeValue

		if eq.Direction == query.Outbound {
			// Exploits the lexicographic (outbound_id, type,
			// inbound_id) ordering: all edges sharing an
			// (outbound_id, type) prefix are contiguous, so a single
			// forward walk from the lower bound finds them all
			// without scanning the whole map.
			for _, vv := range vertexValues {
				typeFilter := core.EmptyType
				if eq.TypeFilter != nil {
					typeFilter = *eq.TypeFilter
				}
				lowerBound := core.NewEdgeKey(vv.ID, typeFilter, core.MinIdentifier)

				done := false
				e.edges.Range(lowerBound, func(key core.EdgeKey, createdDatetime time.Time) bool {
					if key.OutboundID.Compare(vv.ID) != 0 {
						return false
					}
					if eq.TypeFilter != nil && key.T.Compare(*eq.TypeFilter) != 0 {
						return false
					}
					if eq.HighFilter != nil && createdDatetime.After(*eq.HighFilter) {
						return true
					}
					if eq.LowFilter != nil && createdDatetime.Before(*eq.LowFilter) {
						return true
					}
					results = append(results, edgeValue{Key: key, CreatedDatetime: createdDatetime})
					if uint32(len(results)) == eq.Limit {
						done = true
						return false
					}
					return true
				})
				if done {
					return results, nil
				}
			}
			return results, nil
		}

		// Inbound: cannot use the primary order, so build a candidate
		// set of inbound ids and scan every edge in key order. O(E) -
		// an acknowledged hot path a persistent backend should address
		// with a reverse (inbound_id, type, outbound_id) index (spec
		// §9); the in-memory reference engine does not mirror one.
		candidateIDs := make(map[core.Identifier]struct{}, len(vertexValues))
		for _, vv := range vertexValues {
			candidateIDs[vv.ID] = struct{}{}
		}

		e.edges.All(func(key core.EdgeKey, createdDatetime time.Time) bool {
			if _, ok := candidateIDs[key.InboundID]; !ok {
				return true
			}
			if eq.TypeFilter != nil && key.T.Compare(*eq.TypeFilter) != 0 {
				return true
			}
			if eq.HighFilter != nil && createdDatetime.After(*eq.HighFilter) {
				return true
			}
			if eq.LowFilter != nil && createdDatetime.Before(*eq.LowFilter) {
				return true
			}
			results = append(results, edgeValue{Key: key, CreatedDatetime: createdDatetime})
			return uint32(len(results)) < eq.Limit
		})
		return results, nil

	default:
		return nil, core.NewValidationError("unknown edge query variant", nil)
	}
}

// getEdgeCount implements datastore.Transaction.GetEdgeCount's strategy
// directly against the edge map rather than routing through
// getEdgeValuesByQuery with an unbounded limit - the same
// range-scan-for-outbound / full-scan-for-inbound split as the pipe
// path, but counting keys instead of materializing edgeValue results
// for each one. Grounded on InternalMemoryDatastore::get_edge_count in
// datastore.rs, which this mirrors rather than reimplements on top of
// pipe evaluation.
func (e *engine) getEdgeCount(id core.Identifier, typeFilter *core.Type, direction query.EdgeDirection) uint64 {
	var count uint64

	if direction == query.Outbound {
		lowerType := core.EmptyType
		if typeFilter != nil {
			lowerType = *typeFilter
		}
		lowerBound := core.NewEdgeKey(id, lowerType, core.MinIdentifier)
		e.edges.Range(lowerBound, func(key core.EdgeKey, _ time.Time) bool {
			if key.OutboundID.Compare(id) != 0 {
				return false
			}
			if typeFilter != nil && key.T.Compare(*typeFilter) != 0 {
				return false
			}
			count++
			return true
		})
		return count
	}

	e.edges.All(func(key core.EdgeKey, _ time.Time) bool {
		if key.InboundID.Compare(id) != 0 {
			return true
		}
		if typeFilter != nil && key.T.Compare(*typeFilter) != 0 {
			return true
		}
		count++
		return true
	})
	return count
}

// deleteVertices cascades: for each id, remove the vertex, every
// vertex-property it owns, and every edge naming it as either
// endpoint (which in turn cascades to that edge's properties via
// deleteEdges). Grounded on
// InternalMemoryDatastore::delete_vertices in datastore.rs.
func (e *engine) deleteVertices(ids []core.Identifier) {
	for _, id := range ids {
		e.vertices.Delete(id)

		var deletableProps []vertexPropertyKey
		e.vertexProperties.Range(vertexPropertyKey{OwnerID: id}, func(k vertexPropertyKey, _ document.Value) bool {
			if k.OwnerID.Compare(id) != 0 {
				return false
			}
			deletableProps = append(deletableProps, k)
			return true
		})
		for _, k := range deletableProps {
			e.vertexProperties.Delete(k)
		}

		var deletableEdges []core.EdgeKey
		e.edges.All(func(key core.EdgeKey, _ time.Time) bool {
			if key.OutboundID.Compare(id) == 0 || key.InboundID.Compare(id) == 0 {
				deletableEdges = append(deletableEdges, key)
			}
			return true
		})
		e.deleteEdges(deletableEdges)
	}
}

// deleteEdges cascades to edge properties. Grounded on
// InternalMemoryDatastore::delete_edges in datastore.rs.
func (e *engine) deleteEdges(keys []core.EdgeKey) {
	for _, key := range keys {
		e.edges.Delete(key)

		var deletableProps []edgePropertyKey
		e.edgeProperties.Range(edgePropertyKey{OwnerKey: key}, func(k edgePropertyKey, _ document.Value) bool {
			if k.OwnerKey.Compare(key) != 0 {
				return false
			}
			deletableProps = append(deletableProps, k)
			return true
		})
		for _, k := range deletableProps {
			e.edgeProperties.Delete(k)
		}
	}
}
