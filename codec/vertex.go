package codec

import "github.com/prahaladd/graphcore/core"

// EncodeVertex serializes v as id ‖ type. Grounded on
// converters.rs::from_vertex.
func EncodeVertex(v core.Vertex) []byte {
	w := newWriter()
	w.writeIdentifier(v.ID)
	w.writeString(v.T.String())
	return w.Bytes()
}

// DecodeVertex is the inverse of EncodeVertex. Grounded on
// converters.rs::to_vertex.
func DecodeVertex(data []byte) (core.Vertex, error) {
	r := newReader(data)

	id, err := r.readIdentifier()
	if err != nil {
		return core.Vertex{}, wrapErr("vertex.id", err)
	}
	typeStr, err := r.readString()
	if err != nil {
		return core.Vertex{}, wrapErr("vertex.type", err)
	}
	t, err := core.NewType(typeStr)
	if err != nil {
		return core.Vertex{}, wrapErr("vertex.type", err)
	}
	return core.WithID(id, t), nil
}
