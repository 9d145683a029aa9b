package memory

import (
	"testing"

	"github.com/prahaladd/graphcore/codec"
	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/query"
)

func TestBulkInsertAppliesEveryItemKind(t *testing.T) {
	ds := NewDatastore()
	txHandle, err := ds.Transaction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx := txHandle.(*transaction)

	person := mustType(t, "person")
	follows := mustType(t, "follows")
	tomID := core.NewIdentifier()
	jerryID := core.NewIdentifier()
	edgeKey := core.NewEdgeKey(tomID, follows, jerryID)

	items := []codec.BulkInsertItem{
		codec.NewBulkVertexItem(core.WithID(tomID, person)),
		codec.NewBulkVertexItem(core.WithID(jerryID, person)),
		codec.NewBulkEdgeItem(edgeKey),
		codec.NewBulkVertexPropertyItem(tomID, "name", "Tom"),
		codec.NewBulkEdgePropertyItem(edgeKey, "since", "1990"),
	}

	if err := tx.BulkInsert(items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := tx.GetVertexCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("got vertex count %d, want 2", count)
	}

	edges, err := tx.GetEdges(query.NewEdgesByKey(edgeKey))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}

	props, err := tx.GetVertexProperties(query.NewVerticesByID(tomID), "name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(props) != 1 || props[0].Value != "Tom" {
		t.Fatalf("got %+v, want a single Tom property", props)
	}

	edgeProps, err := tx.GetEdgeProperties(query.NewEdgesByKey(edgeKey), "since")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edgeProps) != 1 || edgeProps[0].Value != "1990" {
		t.Fatalf("got %+v, want a single 1990 property", edgeProps)
	}
}

func TestBulkInsertVertexPropertyWithoutOwningVertexIsANoOp(t *testing.T) {
	ds := NewDatastore()
	txHandle, err := ds.Transaction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx := txHandle.(*transaction)

	orphanID := core.NewIdentifier()
	if err := tx.BulkInsert([]codec.BulkInsertItem{
		codec.NewBulkVertexPropertyItem(orphanID, "name", "ghost"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Property tables never contain orphan entries: the owning vertex
	// was never inserted, so the property item must no-op, just as
	// SetVertexProperties would leave nothing behind for a query that
	// matches no vertices.
	if _, ok := ds.eng.vertexProperties.Get(vertexPropertyKey{OwnerID: orphanID, Name: "name"}); ok {
		t.Fatal("expected the orphaned property item to be dropped, not recorded")
	}
}

func TestBulkInsertEdgeRequiresBothEndpointsToPreexist(t *testing.T) {
	ds := NewDatastore()
	txHandle, err := ds.Transaction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx := txHandle.(*transaction)

	person := mustType(t, "person")
	follows := mustType(t, "follows")
	tomID := core.NewIdentifier()
	jerryID := core.NewIdentifier()
	edgeKey := core.NewEdgeKey(tomID, follows, jerryID)

	// Only tom is inserted in this batch - jerry never exists, whether
	// earlier in the same batch or at all - so the edge item must no-op
	// exactly as a standalone CreateEdge call would.
	if err := tx.BulkInsert([]codec.BulkInsertItem{
		codec.NewBulkVertexItem(core.WithID(tomID, person)),
		codec.NewBulkEdgeItem(edgeKey),
		codec.NewBulkEdgePropertyItem(edgeKey, "since", "1990"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := ds.eng.edges.Get(edgeKey); ok {
		t.Fatal("expected the edge item to be dropped - jerry was never inserted")
	}
	if _, ok := ds.eng.edgeProperties.Get(edgePropertyKey{OwnerKey: edgeKey, Name: "since"}); ok {
		t.Fatal("expected the edge property item to be dropped along with its missing owning edge")
	}
}

func TestBulkInsertDuplicateVertexPreservesExistingType(t *testing.T) {
	ds := NewDatastore()
	txHandle, err := ds.Transaction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx := txHandle.(*transaction)

	person := mustType(t, "person")
	animal := mustType(t, "animal")
	id := core.NewIdentifier()

	if err := tx.BulkInsert([]codec.BulkInsertItem{
		codec.NewBulkVertexItem(core.WithID(id, person)),
		codec.NewBulkVertexItem(core.WithID(id, animal)),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	typ, ok := ds.eng.vertices.Get(id)
	if !ok {
		t.Fatal("expected the vertex to exist")
	}
	if typ.Compare(person) != 0 {
		t.Fatalf("got type %v, want the first-inserted type %v to be preserved", typ, person)
	}
}
