package remote

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/prahaladd/graphcore/datastore"
)

const defaultTimeout = 5 * time.Second

func init() {
	datastore.Register("remote", func() (datastore.Datastore, error) {
		return NewDatastoreFromEnv()
	})
}

// Datastore is a Neo4j-backed datastore.Datastore. Grounded on the
// teacher's Neo4jConnection (neo/executor.go), narrowed to the single
// driver field - session/transaction handling now lives on
// transaction, matching the shape of package memory's
// internalDatastore/transaction split.
type Datastore struct {
	driver neo4j.DriverWithContext
}

// NewDatastore opens a Neo4j driver against target using basic auth.
// Mirrors neo.NewConnection's basic-auth path; the auth-token and
// advanced-options paths the teacher also supported are left for a
// caller to build directly against neo4j.NewDriverWithContext, since
// graphcore doesn't need to reproduce that surface to satisfy
// datastore.Datastore.
func NewDatastore(target, username, password string) (*Datastore, error) {
	driver, err := neo4j.NewDriverWithContext(target, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}
	return &Datastore{driver: driver}, nil
}

// NewDatastoreFromEnv builds a Datastore from GRAPHCORE_REMOTE_URI,
// GRAPHCORE_REMOTE_USER, and GRAPHCORE_REMOTE_PASSWORD - the
// ambient-config convention SPEC_FULL.md §10 documents for every
// backend that needs connection details it cannot receive through
// datastore.Factory's zero-argument signature.
func NewDatastoreFromEnv() (*Datastore, error) {
	target := os.Getenv("GRAPHCORE_REMOTE_URI")
	username := os.Getenv("GRAPHCORE_REMOTE_USER")
	password := os.Getenv("GRAPHCORE_REMOTE_PASSWORD")
	if target == "" {
		return nil, errors.New("remote: GRAPHCORE_REMOTE_URI is not set")
	}
	return NewDatastore(target, username, password)
}

func (d *Datastore) Transaction() (datastore.Transaction, error) {
	return &transaction{driver: d.driver}, nil
}

// Close releases the underlying driver's connection pool.
func (d *Datastore) Close(ctx context.Context) error {
	return d.driver.Close(ctx)
}
