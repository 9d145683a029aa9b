package codec

import (
	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/document"
)

// EncodeVertexProperty serializes p as owner_id ‖ name ‖ json(value).
// Grounded on converters.rs::from_vertex_property, which writes the
// property's serde_json-rendered value as a string - graphcore's
// document.Marshal plays the equivalent role.
func EncodeVertexProperty(p core.VertexProperty) ([]byte, error) {
	valueText, err := document.Marshal(p.Value)
	if err != nil {
		return nil, wrapErr("vertexProperty.value", err)
	}
	w := newWriter()
	w.writeIdentifier(p.OwnerID)
	w.writeString(p.Name)
	w.writeString(valueText)
	return w.Bytes(), nil
}

// DecodeVertexProperty is the inverse of EncodeVertexProperty.
// Grounded on converters.rs::to_vertex_property.
func DecodeVertexProperty(data []byte) (core.VertexProperty, error) {
	r := newReader(data)

	ownerID, err := r.readIdentifier()
	if err != nil {
		return core.VertexProperty{}, wrapErr("vertexProperty.ownerID", err)
	}
	name, err := r.readString()
	if err != nil {
		return core.VertexProperty{}, wrapErr("vertexProperty.name", err)
	}
	valueText, err := r.readString()
	if err != nil {
		return core.VertexProperty{}, wrapErr("vertexProperty.value", err)
	}
	value, err := document.Parse(valueText)
	if err != nil {
		return core.VertexProperty{}, wrapErr("vertexProperty.value", err)
	}
	return core.NewVertexProperty(ownerID, name, value), nil
}

// EncodeEdgeProperty serializes p as owner_key ‖ name ‖ json(value),
// with owner_key itself length-prefixed since EdgeKey has no fixed
// width (its type string is length-prefixed). Grounded on
// converters.rs::from_edge_property.
func EncodeEdgeProperty(p core.EdgeProperty) ([]byte, error) {
	valueText, err := document.Marshal(p.Value)
	if err != nil {
		return nil, wrapErr("edgeProperty.value", err)
	}
	w := newWriter()
	w.writeBytes(EncodeEdgeKey(p.OwnerKey))
	w.writeString(p.Name)
	w.writeString(valueText)
	return w.Bytes(), nil
}

// DecodeEdgeProperty is the inverse of EncodeEdgeProperty. Grounded on
// converters.rs::to_edge_property.
func DecodeEdgeProperty(data []byte) (core.EdgeProperty, error) {
	r := newReader(data)

	keyBytes, err := r.readBytes()
	if err != nil {
		return core.EdgeProperty{}, wrapErr("edgeProperty.ownerKey", err)
	}
	key, err := DecodeEdgeKey(keyBytes)
	if err != nil {
		return core.EdgeProperty{}, wrapErr("edgeProperty.ownerKey", err)
	}
	name, err := r.readString()
	if err != nil {
		return core.EdgeProperty{}, wrapErr("edgeProperty.name", err)
	}
	valueText, err := r.readString()
	if err != nil {
		return core.EdgeProperty{}, wrapErr("edgeProperty.value", err)
	}
	value, err := document.Parse(valueText)
	if err != nil {
		return core.EdgeProperty{}, wrapErr("edgeProperty.value", err)
	}
	return core.NewEdgeProperty(key, name, value), nil
}
