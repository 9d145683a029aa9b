// Package memory implements the in-memory reference Datastore: the
// capability set from package datastore backed by engine's four
// ordered maps and a single sync.RWMutex. It is the only backend
// required by spec §1; package remote adds a second, Neo4j-backed one
// to demonstrate that the capability-set contract is not tied to this
// implementation.
package memory

import (
	"sync"

	"github.com/prahaladd/graphcore/datastore"
)

func init() {
	datastore.Register("memory", func() (datastore.Datastore, error) {
		return NewDatastore(), nil
	})
}

// internalDatastore is the in-memory Datastore implementation. All of
// its state lives in eng; mu is the single coarse-grained lock spec §5
// specifies in place of per-statement ACID transactions - every
// Transaction method takes mu for the duration of one call and
// releases it before returning.
type internalDatastore struct {
	mu  sync.RWMutex
	eng *engine
}

// NewDatastore constructs an empty in-memory Datastore. Most callers
// should go through datastore.Open("memory") instead; this is exported
// for tests and for embedders that want the concrete type directly.
func NewDatastore() *internalDatastore {
	return &internalDatastore{eng: newEngine()}
}

func (d *internalDatastore) Transaction() (datastore.Transaction, error) {
	return &transaction{ds: d}, nil
}
