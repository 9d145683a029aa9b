package memory

import (
	"testing"
	"time"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/query"
)

var zeroTime = time.Now().UTC()

func TestVertexPipeAppliesLimitBeforeHydration(t *testing.T) {
	e := newEngine()
	person := mustType(t, "person")
	follows := mustType(t, "follows")

	tom := core.NewIdentifier()
	e.vertices.Set(tom, person)

	// Two outbound edges from tom, but only the second endpoint (by
	// identifier order - missing's bytes sort before present's) was
	// ever inserted as a vertex. A limit of 1 applied to the raw
	// endpoint ids (before hydration) lands on the missing vertex and
	// so returns zero vertices - not one, even though a second,
	// resolvable edge exists right after it.
	missingBytes := make([]byte, 16)
	missingBytes[15] = 1
	missing, err := core.IdentifierFromBytes(missingBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	presentBytes := make([]byte, 16)
	presentBytes[15] = 2
	present, err := core.IdentifierFromBytes(presentBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.vertices.Set(present, person)
	e.edges.Set(core.NewEdgeKey(tom, follows, missing), zeroTime)
	e.edges.Set(core.NewEdgeKey(tom, follows, present), zeroTime)

	results, err := e.getVertexValuesByQuery(query.VertexPipe{
		EdgeQuery: query.EdgePipe{
			VertexQuery: query.NewVerticesByID(tom),
			Direction:   query.Outbound,
			Limit:       10,
		},
		Direction: query.Inbound,
		Limit:     1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0 - the limit should have consumed the missing endpoint's slot", len(results))
	}
}

func TestGetEdgeValuesByQueryZeroLimitReturnsEmpty(t *testing.T) {
	e := newEngine()
	results, err := e.getEdgeValuesByQuery(query.EdgePipe{
		VertexQuery: query.NewAllVertices(10),
		Direction:   query.Outbound,
		Limit:       0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Fatalf("got %v, want nil for a zero-limit pipe", results)
	}
}

func TestDeleteVerticesCascadesAtEngineLevel(t *testing.T) {
	e := newEngine()
	person := mustType(t, "person")
	follows := mustType(t, "follows")

	tom := core.NewIdentifier()
	jerry := core.NewIdentifier()
	e.vertices.Set(tom, person)
	e.vertices.Set(jerry, person)
	key := core.NewEdgeKey(tom, follows, jerry)
	e.edges.Set(key, zeroTime)
	e.vertexProperties.Set(vertexPropertyKey{OwnerID: tom, Name: "name"}, "Tom")
	e.edgeProperties.Set(edgePropertyKey{OwnerKey: key, Name: "since"}, "1990")

	e.deleteVertices([]core.Identifier{tom})

	if _, ok := e.vertices.Get(tom); ok {
		t.Fatal("expected tom to be deleted")
	}
	if _, ok := e.edges.Get(key); ok {
		t.Fatal("expected the incident edge to be cascaded away")
	}
	if _, ok := e.vertexProperties.Get(vertexPropertyKey{OwnerID: tom, Name: "name"}); ok {
		t.Fatal("expected tom's vertex property to be cascaded away")
	}
	if _, ok := e.edgeProperties.Get(edgePropertyKey{OwnerKey: key, Name: "since"}); ok {
		t.Fatal("expected the cascaded edge's property to be cascaded away too")
	}
	if _, ok := e.vertices.Get(jerry); !ok {
		t.Fatal("expected jerry to survive - only tom was targeted")
	}
}
