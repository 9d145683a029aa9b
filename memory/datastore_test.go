package memory

import (
	"testing"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/datastore"
)

func TestMemoryBackendSelfRegisters(t *testing.T) {
	store, err := datastore.Open("memory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store == nil {
		t.Fatal("expected the \"memory\" backend to be registered")
	}
	if _, ok := store.(*internalDatastore); !ok {
		t.Fatalf("got %T, want *internalDatastore", store)
	}
}

func TestTransactionsShareUnderlyingState(t *testing.T) {
	ds := NewDatastore()

	txA, err := ds.Transaction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	txB, err := ds.Transaction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	person := mustType(t, "person")
	if _, err := txA.CreateVertex(core.NewVertex(person)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := txB.GetVertexCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d, want 1 - transactions must share the datastore's state", count)
	}
}
