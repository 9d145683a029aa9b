// Package codec implements graphcore's binary wire format: a
// schema-driven encoding of the model and query types in packages
// core and query, using tagged-union discriminants and sentinel
// encodings for optionals in place of a schema compiler (capnproto,
// protobuf, flatbuffers). No complete example repo in the retrieved
// pack imports a binary-schema library directly - the few hits
// (capnproto/protobuf mentions) arrive transitively via unrelated
// gRPC/otel dependency chains, never as a hand-wired wire format - so
// this package is grounded on the standard library's encoding/binary
// and bytes.Buffer rather than a fabricated dependency (see DESIGN.md).
package codec

import (
	"errors"
	"fmt"

	"github.com/prahaladd/graphcore/core"
)

// Error wraps a decode or encode failure with the field path that
// produced it, mirroring capnp::Error::failed's plain string wrapping
// in the original source's converters.rs.
type Error struct {
	Field string
	cause error
}

// wrapErr attaches field to cause. A cause that does not already carry
// core.ErrKindCodec is first wrapped in a core codec error, so every
// failure this package wraps unwraps to that one kind.
func wrapErr(field string, cause error) error {
	if cause == nil {
		return nil
	}
	var coreErr *core.Error
	if !errors.As(cause, &coreErr) || coreErr.Kind != core.ErrKindCodec {
		cause = core.NewCodecError(field, cause)
	}
	return &Error{Field: field, cause: cause}
}

func (e *Error) Error() string {
	return fmt.Sprintf("codec: %s: %v", e.Field, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}
