package codec

import (
	"time"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/query"
)

const (
	tagAllVertices uint8 = iota
	tagVerticesByID
	tagVertexPipe
)

const (
	tagEdgesByKey uint8 = iota
	tagEdgePipe
)

func writeDirection(w *writer, d query.EdgeDirection) {
	if d == query.Inbound {
		w.writeByte(1)
	} else {
		w.writeByte(0)
	}
}

func readDirection(r *reader) (query.EdgeDirection, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if b == 1 {
		return query.Inbound, nil
	}
	return query.Outbound, nil
}

// timeToNanos mirrors from_edge_query's `high_filter.timestamp_nanos()
// as u64`: nil encodes as the 0 sentinel. Times at or before the Unix
// epoch cannot be expressed: the epoch itself encodes as the 0 sentinel
// and decodes as nil, and an earlier time's negative UnixNano wraps
// around in the uint64 conversion.
func timeToNanos(t *time.Time) uint64 {
	if t == nil {
		return 0
	}
	return uint64(t.UnixNano())
}

// nanosToTime is converters.rs::to_optional_datetime, reproduced
// exactly: 0 decodes back to nil, otherwise the nanosecond count is
// split into whole seconds plus a remainder, matching the original's
// secs/nanos split instead of a single UnixNano conversion.
func nanosToTime(nanos uint64) *time.Time {
	if nanos == 0 {
		return nil
	}
	secs := int64(nanos / nanosPerSec)
	ns := int64(nanos % nanosPerSec)
	t := time.Unix(secs, ns).UTC()
	return &t
}

// EncodeVertexQuery serializes a query.VertexQuery. Grounded on
// converters.rs::from_vertex_query.
func EncodeVertexQuery(q query.VertexQuery) ([]byte, error) {
	w := newWriter()
	if err := encodeVertexQuery(w, q); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeVertexQuery(w *writer, q query.VertexQuery) error {
	switch vq := q.(type) {
	case query.AllVertices:
		w.writeByte(tagAllVertices)
		w.writeOptionalIdentifier(vq.StartID)
		w.writeUint32(vq.Limit)
		return nil

	case query.VerticesByID:
		w.writeByte(tagVerticesByID)
		w.writeUint32(uint32(len(vq.IDs)))
		for _, id := range vq.IDs {
			w.writeIdentifier(id)
		}
		return nil

	case query.VertexPipe:
		w.writeByte(tagVertexPipe)
		writeDirection(w, vq.Direction)
		w.writeUint32(vq.Limit)
		return encodeEdgeQuery(w, vq.EdgeQuery)

	default:
		return core.NewCodecError("unknown vertex query variant", nil)
	}
}

// DecodeVertexQuery is the inverse of EncodeVertexQuery. Grounded on
// converters.rs::to_vertex_query.
func DecodeVertexQuery(data []byte) (query.VertexQuery, error) {
	r := newReader(data)
	return decodeVertexQuery(r)
}

func decodeVertexQuery(r *reader) (query.VertexQuery, error) {
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagAllVertices:
		startID, err := r.readOptionalIdentifier()
		if err != nil {
			return nil, wrapErr("vertexQuery.all.startID", err)
		}
		limit, err := r.readUint32()
		if err != nil {
			return nil, wrapErr("vertexQuery.all.limit", err)
		}
		q := query.NewAllVertices(limit)
		if startID != nil {
			q = q.From(*startID)
		}
		return q, nil

	case tagVerticesByID:
		n, err := r.readUint32()
		if err != nil {
			return nil, wrapErr("vertexQuery.vertices.count", err)
		}
		ids := make([]core.Identifier, n)
		for i := range ids {
			ids[i], err = r.readIdentifier()
			if err != nil {
				return nil, wrapErr("vertexQuery.vertices.id", err)
			}
		}
		return query.VerticesByID{IDs: ids}, nil

	case tagVertexPipe:
		direction, err := readDirection(r)
		if err != nil {
			return nil, wrapErr("vertexQuery.pipe.direction", err)
		}
		limit, err := r.readUint32()
		if err != nil {
			return nil, wrapErr("vertexQuery.pipe.limit", err)
		}
		edgeQuery, err := decodeEdgeQuery(r)
		if err != nil {
			return nil, wrapErr("vertexQuery.pipe.edgeQuery", err)
		}
		return query.VertexPipe{EdgeQuery: edgeQuery, Direction: direction, Limit: limit}, nil

	default:
		return nil, core.NewCodecError("unknown vertex query tag", nil)
	}
}

// EncodeEdgeQuery serializes a query.EdgeQuery. Grounded on
// converters.rs::from_edge_query.
func EncodeEdgeQuery(q query.EdgeQuery) ([]byte, error) {
	w := newWriter()
	if err := encodeEdgeQuery(w, q); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeEdgeQuery(w *writer, q query.EdgeQuery) error {
	switch eq := q.(type) {
	case query.EdgesByKey:
		w.writeByte(tagEdgesByKey)
		w.writeUint32(uint32(len(eq.Keys)))
		for _, key := range eq.Keys {
			w.writeBytes(EncodeEdgeKey(key))
		}
		return nil

	case query.EdgePipe:
		w.writeByte(tagEdgePipe)
		writeDirection(w, eq.Direction)
		w.writeOptionalType(eq.TypeFilter)
		w.writeOptionalNanos(timeToNanos(eq.HighFilter))
		w.writeOptionalNanos(timeToNanos(eq.LowFilter))
		w.writeUint32(eq.Limit)
		return encodeVertexQuery(w, eq.VertexQuery)

	default:
		return core.NewCodecError("unknown edge query variant", nil)
	}
}

// DecodeEdgeQuery is the inverse of EncodeEdgeQuery. Grounded on
// converters.rs::to_edge_query.
func DecodeEdgeQuery(data []byte) (query.EdgeQuery, error) {
	r := newReader(data)
	return decodeEdgeQuery(r)
}

func decodeEdgeQuery(r *reader) (query.EdgeQuery, error) {
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagEdgesByKey:
		n, err := r.readUint32()
		if err != nil {
			return nil, wrapErr("edgeQuery.edges.count", err)
		}
		keys := make([]core.EdgeKey, n)
		for i := range keys {
			keyBytes, err := r.readBytes()
			if err != nil {
				return nil, wrapErr("edgeQuery.edges.key", err)
			}
			keys[i], err = DecodeEdgeKey(keyBytes)
			if err != nil {
				return nil, wrapErr("edgeQuery.edges.key", err)
			}
		}
		return query.EdgesByKey{Keys: keys}, nil

	case tagEdgePipe:
		direction, err := readDirection(r)
		if err != nil {
			return nil, wrapErr("edgeQuery.pipe.direction", err)
		}
		typeFilter, err := r.readOptionalType()
		if err != nil {
			return nil, wrapErr("edgeQuery.pipe.typeFilter", err)
		}
		highNanos, err := r.readOptionalNanos()
		if err != nil {
			return nil, wrapErr("edgeQuery.pipe.highFilter", err)
		}
		lowNanos, err := r.readOptionalNanos()
		if err != nil {
			return nil, wrapErr("edgeQuery.pipe.lowFilter", err)
		}
		limit, err := r.readUint32()
		if err != nil {
			return nil, wrapErr("edgeQuery.pipe.limit", err)
		}
		vertexQuery, err := decodeVertexQuery(r)
		if err != nil {
			return nil, wrapErr("edgeQuery.pipe.vertexQuery", err)
		}
		return query.EdgePipe{
			VertexQuery: vertexQuery,
			Direction:   direction,
			TypeFilter:  typeFilter,
			HighFilter:  nanosToTime(highNanos),
			LowFilter:   nanosToTime(lowNanos),
			Limit:       limit,
		}, nil

	default:
		return nil, core.NewCodecError("unknown edge query tag", nil)
	}
}
