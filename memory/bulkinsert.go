package memory

import (
	"time"

	"github.com/prahaladd/graphcore/codec"
)

// BulkInsert applies each item in order under a single write-lock
// acquisition, rather than the per-item lock/unlock cost of driving
// the same writes through Transaction one call at a time. This is a
// supplemental feature: converters.rs frames BulkInsertItem but the
// kept Rust sources never apply it against the in-memory datastore
// (SPEC_FULL.md §12). Each item still applies independently with
// exactly CreateVertex/CreateEdge's own semantics - a duplicate vertex
// id is a no-op that preserves the existing type, and an edge whose
// endpoint vertex is missing (whether absent from the datastore or
// simply not yet applied earlier in the same batch) is a no-op too.
func (t *transaction) BulkInsert(items []codec.BulkInsertItem) error {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	for _, item := range items {
		applyBulkInsertItem(t.ds.eng, item)
	}
	return nil
}

func applyBulkInsertItem(e *engine, item codec.BulkInsertItem) {
	switch item.Kind {
	case codec.BulkKindVertex:
		if _, exists := e.vertices.Get(item.Vertex.ID); exists {
			return
		}
		e.vertices.Set(item.Vertex.ID, item.Vertex.T)
	case codec.BulkKindEdge:
		if _, ok := e.vertices.Get(item.Edge.OutboundID); !ok {
			return
		}
		if _, ok := e.vertices.Get(item.Edge.InboundID); !ok {
			return
		}
		e.edges.Set(item.Edge, time.Now().UTC())
	case codec.BulkKindVertexProperty:
		if _, ok := e.vertices.Get(item.PropertyOwnerVertex); !ok {
			return
		}
		e.vertexProperties.Set(vertexPropertyKey{OwnerID: item.PropertyOwnerVertex, Name: item.PropertyName}, item.PropertyValue)
	case codec.BulkKindEdgeProperty:
		if _, ok := e.edges.Get(item.PropertyOwnerEdge); !ok {
			return
		}
		e.edgeProperties.Set(edgePropertyKey{OwnerKey: item.PropertyOwnerEdge, Name: item.PropertyName}, item.PropertyValue)
	}
}
