package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/prahaladd/graphcore/core"
)

// NANOS_PER_SEC mirrors converters.rs's constant of the same name - the
// nanosecond/second split used by optional-timestamp filters.
const nanosPerSec = 1_000_000_000

// writer accumulates an encoded message. Every write method is
// infallible (bytes.Buffer.Write never errors), so only Bytes needs
// calling at the end.
type writer struct {
	buf bytes.Buffer
}

func newWriter() *writer {
	return &writer{}
}

func (w *writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *writer) writeByte(b byte) {
	w.buf.WriteByte(b)
}

func (w *writer) writeUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) writeBytes(b []byte) {
	w.writeUint32(uint32(len(b)))
	w.buf.Write(b)
}

func (w *writer) writeString(s string) {
	w.writeBytes([]byte(s))
}

// writeIdentifier writes the 16 raw UUID bytes, unprefixed - callers
// that need an optional identifier use writeOptionalIdentifier instead.
func (w *writer) writeIdentifier(id core.Identifier) {
	w.buf.Write(id.Bytes())
}

// writeOptionalIdentifier sentinel-encodes a *core.Identifier as a
// length-prefixed byte string: zero length means None, 16 bytes means
// Some(id). Grounded on to_vertex_query's
// `if start_id_bytes.is_empty() { None } else { ... }` check.
func (w *writer) writeOptionalIdentifier(id *core.Identifier) {
	if id == nil {
		w.writeBytes(nil)
		return
	}
	w.writeBytes(id.Bytes())
}

// writeOptionalType sentinel-encodes a *core.Type as a length-prefixed
// string: empty string means None. Grounded on from_edge_query's
// `if let Some(type_filter) = type_filter { builder.set_type_filter(...) }`,
// paired with to_edge_query's `"" => None` match arm.
func (w *writer) writeOptionalType(t *core.Type) {
	if t == nil {
		w.writeString("")
		return
	}
	w.writeString(t.String())
}

// writeOptionalNanos writes a filter timestamp, already converted by
// timeToNanos, as a uint64 of nanoseconds since the epoch: 0 means
// None. Grounded on
// converters.rs::to_optional_datetime / from_edge_query's
// `high_filter.timestamp_nanos()`.
func (w *writer) writeOptionalNanos(nanos uint64) {
	w.writeUint64(nanos)
}

// reader consumes an encoded message produced by writer.
type reader struct {
	r *bytes.Reader
}

func newReader(data []byte) *reader {
	return &reader{r: bytes.NewReader(data)}
}

func (r *reader) readByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, wrapErr("tag", err)
	}
	return b, nil
}

func (r *reader) readUint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, wrapErr("uint32", err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (r *reader) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, wrapErr("uint64", err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (r *reader) readBytes() ([]byte, error) {
	n, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, wrapErr("bytes", err)
	}
	return b, nil
}

func (r *reader) readString() (string, error) {
	b, err := r.readBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) readIdentifier() (core.Identifier, error) {
	b := make([]byte, 16)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return core.Identifier{}, wrapErr("identifier", err)
	}
	id, err := core.IdentifierFromBytes(b)
	if err != nil {
		return core.Identifier{}, wrapErr("identifier", err)
	}
	return id, nil
}

func (r *reader) readOptionalIdentifier() (*core.Identifier, error) {
	b, err := r.readBytes()
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	id, err := core.IdentifierFromBytes(b)
	if err != nil {
		return nil, wrapErr("optional identifier", err)
	}
	return &id, nil
}

func (r *reader) readOptionalType() (*core.Type, error) {
	s, err := r.readString()
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	t, err := core.NewType(s)
	if err != nil {
		return nil, wrapErr("optional type", err)
	}
	return &t, nil
}

func (r *reader) readOptionalNanos() (uint64, error) {
	return r.readUint64()
}
