package codec

import (
	"time"

	"github.com/prahaladd/graphcore/core"
)

// EncodeEdgeKey serializes key as outbound_id ‖ type ‖ inbound_id.
// Grounded on converters.rs::from_edge_key.
func EncodeEdgeKey(key core.EdgeKey) []byte {
	w := newWriter()
	w.writeIdentifier(key.OutboundID)
	w.writeString(key.T.String())
	w.writeIdentifier(key.InboundID)
	return w.Bytes()
}

// DecodeEdgeKey is the inverse of EncodeEdgeKey. Grounded on
// converters.rs::to_edge_key.
func DecodeEdgeKey(data []byte) (core.EdgeKey, error) {
	r := newReader(data)

	outboundID, err := r.readIdentifier()
	if err != nil {
		return core.EdgeKey{}, wrapErr("edgeKey.outboundID", err)
	}
	typeStr, err := r.readString()
	if err != nil {
		return core.EdgeKey{}, wrapErr("edgeKey.type", err)
	}
	t, err := core.NewType(typeStr)
	if err != nil {
		return core.EdgeKey{}, wrapErr("edgeKey.type", err)
	}
	inboundID, err := r.readIdentifier()
	if err != nil {
		return core.EdgeKey{}, wrapErr("edgeKey.inboundID", err)
	}
	return core.NewEdgeKey(outboundID, t, inboundID), nil
}

// EncodeEdge serializes e as created_datetime (seconds since the
// epoch, unlike the nanosecond encoding used for query filters) ‖ key.
// Grounded on converters.rs::from_edge, which truncates to
// `.timestamp()` (seconds) rather than the nanosecond precision used
// for EdgeQuery's high/low filters - the asymmetry is intentional and
// preserved here rather than "fixed" to a single precision.
func EncodeEdge(e core.Edge) []byte {
	w := newWriter()
	w.writeUint64(uint64(e.CreatedDatetime.Unix()))
	w.buf.Write(EncodeEdgeKey(e.Key))
	return w.Bytes()
}

// DecodeEdge is the inverse of EncodeEdge. Grounded on
// converters.rs::to_edge.
func DecodeEdge(data []byte) (core.Edge, error) {
	r := newReader(data)

	seconds, err := r.readUint64()
	if err != nil {
		return core.Edge{}, wrapErr("edge.createdDatetime", err)
	}
	rest := data[len(data)-r.r.Len():]
	key, err := DecodeEdgeKey(rest)
	if err != nil {
		return core.Edge{}, wrapErr("edge.key", err)
	}
	return core.NewEdge(key, time.Unix(int64(seconds), 0).UTC()), nil
}
