package core

import (
	"bytes"

	"github.com/google/uuid"
)

// Identifier is a 16-byte universally unique identifier naming a vertex.
// Ordering is byte-lexicographic, which the in-memory engine's ordered
// maps rely on for range scans.
type Identifier struct {
	value uuid.UUID
}

// NewIdentifier mints a fresh random identifier.
func NewIdentifier() Identifier {
	return Identifier{value: uuid.New()}
}

// IdentifierFromBytes builds an Identifier from its 16 raw bytes, as
// carried on the wire. Returns an error if the slice is not 16 bytes.
func IdentifierFromBytes(b []byte) (Identifier, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return Identifier{}, NewValidationError("malformed identifier", err)
	}
	return Identifier{value: id}, nil
}

// IdentifierFromString parses an identifier's canonical UUID text
// form, as used by backends (like remote) that store identifiers as a
// string property rather than raw bytes.
func IdentifierFromString(s string) (Identifier, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Identifier{}, NewValidationError("malformed identifier", err)
	}
	return Identifier{value: id}, nil
}

// Bytes returns the 16 raw bytes of the identifier, for wire transport.
func (id Identifier) Bytes() []byte {
	b := [16]byte(id.value)
	out := make([]byte, 16)
	copy(out, b[:])
	return out
}

// String renders the identifier in canonical UUID form.
func (id Identifier) String() string {
	return id.value.String()
}

// IsZero reports whether id is the default, all-zero identifier.
func (id Identifier) IsZero() bool {
	return id.value == uuid.Nil
}

// Compare orders identifiers byte-lexicographically: negative if id < other,
// zero if equal, positive if id > other.
func (id Identifier) Compare(other Identifier) int {
	return bytes.Compare(id.value[:], other.value[:])
}

// MinIdentifier is the all-zero identifier, used as the lower bound when
// constructing range-scan keys (e.g. the start of an outbound-edge scan).
var MinIdentifier = Identifier{value: uuid.Nil}
