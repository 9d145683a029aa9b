package memory

// This file notes, without implementing, the byte-layout a disk-backed
// Engine would need for its composite keys - the idea IndraDB's own
// src/rdb/keys.rs sketches (uuid ‖ length-prefixed type string ‖
// timestamp ‖ uuid, big-endian, for a RocksDB-style byte-ordered
// store). Per spec §1, that encoding is explicitly NOT part of the
// in-memory core; it is kept here only as the pointer a future
// persistent backend implementation would start from. The in-memory
// engine in this package gets the same ordering guarantee for free
// from orderedMap's struct-comparison cmp functions below.

import (
	"github.com/prahaladd/graphcore/core"
)

func compareIdentifiers(a, b core.Identifier) int {
	return a.Compare(b)
}

func compareEdgeKeys(a, b core.EdgeKey) int {
	return a.Compare(b)
}

// vertexPropertyKey is the composite (owner vertex id, property name)
// key, ordered first by id then by name - the ordering that makes a
// cascading vertex-property delete a contiguous range scan.
type vertexPropertyKey struct {
	OwnerID core.Identifier
	Name    string
}

func compareVertexPropertyKeys(a, b vertexPropertyKey) int {
	if c := a.OwnerID.Compare(b.OwnerID); c != 0 {
		return c
	}
	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	default:
		return 0
	}
}

// edgePropertyKey is the composite (owner edge key, property name) key.
type edgePropertyKey struct {
	OwnerKey core.EdgeKey
	Name     string
}

func compareEdgePropertyKeys(a, b edgePropertyKey) int {
	if c := a.OwnerKey.Compare(b.OwnerKey); c != 0 {
		return c
	}
	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	default:
		return 0
	}
}
