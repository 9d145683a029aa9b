package memory

import (
	"time"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/document"
	"github.com/prahaladd/graphcore/query"
)

// transaction is a lightweight handle onto an internalDatastore's
// shared state - it holds no state of its own beyond the pointer back
// to its parent, so opening many transactions concurrently is cheap.
// Each method below is the "transaction" spec §5 means: one atomic
// call, taking the parent's lock for its own duration only.
type transaction struct {
	ds *internalDatastore
}

func (t *transaction) CreateVertex(v core.Vertex) (bool, error) {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	if _, exists := t.ds.eng.vertices.Get(v.ID); exists {
		return false, nil
	}
	t.ds.eng.vertices.Set(v.ID, v.T)
	return true, nil
}

func (t *transaction) GetVertices(q query.VertexQuery) ([]core.Vertex, error) {
	t.ds.mu.RLock()
	defer t.ds.mu.RUnlock()

	values, err := t.ds.eng.getVertexValuesByQuery(q)
	if err != nil {
		return nil, err
	}
	vertices := make([]core.Vertex, 0, len(values))
	for _, v := range values {
		vertices = append(vertices, core.WithID(v.ID, v.T))
	}
	return vertices, nil
}

func (t *transaction) DeleteVertices(q query.VertexQuery) error {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	values, err := t.ds.eng.getVertexValuesByQuery(q)
	if err != nil {
		return err
	}
	ids := make([]core.Identifier, 0, len(values))
	for _, v := range values {
		ids = append(ids, v.ID)
	}
	t.ds.eng.deleteVertices(ids)
	return nil
}

func (t *transaction) GetVertexCount() (uint64, error) {
	t.ds.mu.RLock()
	defer t.ds.mu.RUnlock()

	return uint64(t.ds.eng.vertices.Len()), nil
}

func (t *transaction) CreateEdge(key core.EdgeKey) (bool, error) {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	if _, ok := t.ds.eng.vertices.Get(key.OutboundID); !ok {
		return false, nil
	}
	if _, ok := t.ds.eng.vertices.Get(key.InboundID); !ok {
		return false, nil
	}
	t.ds.eng.edges.Set(key, time.Now().UTC())
	return true, nil
}

func (t *transaction) GetEdges(q query.EdgeQuery) ([]core.Edge, error) {
	t.ds.mu.RLock()
	defer t.ds.mu.RUnlock()

	values, err := t.ds.eng.getEdgeValuesByQuery(q)
	if err != nil {
		return nil, err
	}
	edges := make([]core.Edge, 0, len(values))
	for _, v := range values {
		edges = append(edges, core.NewEdge(v.Key, v.CreatedDatetime))
	}
	return edges, nil
}

func (t *transaction) DeleteEdges(q query.EdgeQuery) error {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	values, err := t.ds.eng.getEdgeValuesByQuery(q)
	if err != nil {
		return err
	}
	keys := make([]core.EdgeKey, 0, len(values))
	for _, v := range values {
		keys = append(keys, v.Key)
	}
	t.ds.eng.deleteEdges(keys)
	return nil
}

func (t *transaction) GetEdgeCount(id core.Identifier, typeFilter *core.Type, direction query.EdgeDirection) (uint64, error) {
	t.ds.mu.RLock()
	defer t.ds.mu.RUnlock()

	return t.ds.eng.getEdgeCount(id, typeFilter, direction), nil
}

func (t *transaction) GetVertexProperties(q query.VertexQuery, name string) ([]core.VertexProperty, error) {
	t.ds.mu.RLock()
	defer t.ds.mu.RUnlock()

	values, err := t.ds.eng.getVertexValuesByQuery(q)
	if err != nil {
		return nil, err
	}
	var props []core.VertexProperty
	for _, v := range values {
		if value, ok := t.ds.eng.vertexProperties.Get(vertexPropertyKey{OwnerID: v.ID, Name: name}); ok {
			props = append(props, core.NewVertexProperty(v.ID, name, value))
		}
	}
	return props, nil
}

func (t *transaction) SetVertexProperties(q query.VertexQuery, name string, value document.Value) error {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	values, err := t.ds.eng.getVertexValuesByQuery(q)
	if err != nil {
		return err
	}
	for _, v := range values {
		t.ds.eng.vertexProperties.Set(vertexPropertyKey{OwnerID: v.ID, Name: name}, value)
	}
	return nil
}

func (t *transaction) DeleteVertexProperties(q query.VertexQuery, name string) error {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	values, err := t.ds.eng.getVertexValuesByQuery(q)
	if err != nil {
		return err
	}
	for _, v := range values {
		t.ds.eng.vertexProperties.Delete(vertexPropertyKey{OwnerID: v.ID, Name: name})
	}
	return nil
}

func (t *transaction) GetEdgeProperties(q query.EdgeQuery, name string) ([]core.EdgeProperty, error) {
	t.ds.mu.RLock()
	defer t.ds.mu.RUnlock()

	values, err := t.ds.eng.getEdgeValuesByQuery(q)
	if err != nil {
		return nil, err
	}
	var props []core.EdgeProperty
	for _, v := range values {
		if value, ok := t.ds.eng.edgeProperties.Get(edgePropertyKey{OwnerKey: v.Key, Name: name}); ok {
			props = append(props, core.NewEdgeProperty(v.Key, name, value))
		}
	}
	return props, nil
}

func (t *transaction) SetEdgeProperties(q query.EdgeQuery, name string, value document.Value) error {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	values, err := t.ds.eng.getEdgeValuesByQuery(q)
	if err != nil {
		return err
	}
	for _, v := range values {
		t.ds.eng.edgeProperties.Set(edgePropertyKey{OwnerKey: v.Key, Name: name}, value)
	}
	return nil
}

func (t *transaction) DeleteEdgeProperties(q query.EdgeQuery, name string) error {
	t.ds.mu.Lock()
	defer t.ds.mu.Unlock()

	values, err := t.ds.eng.getEdgeValuesByQuery(q)
	if err != nil {
		return err
	}
	for _, v := range values {
		t.ds.eng.edgeProperties.Delete(edgePropertyKey{OwnerKey: v.Key, Name: name})
	}
	return nil
}
