package codec

import (
	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/document"
)

// Bulk insert item kinds, exported so callers applying a decoded batch
// (the BulkInsert method of package memory's transaction) can switch on Kind without reaching
// into codec-internal tag values.
const (
	BulkKindVertex uint8 = iota
	BulkKindEdge
	BulkKindVertexProperty
	BulkKindEdgeProperty
)

const (
	tagBulkVertex         = BulkKindVertex
	tagBulkEdge           = BulkKindEdge
	tagBulkVertexProperty = BulkKindVertexProperty
	tagBulkEdgeProperty   = BulkKindEdgeProperty
)

// BulkInsertItem is graphcore's equivalent of indradb::BulkInsertItem:
// a tagged union over the four write shapes a bulk-load batch can
// contain. Kind selects which fields are populated: Vertex, Edge,
// PropertyOwnerVertex with PropertyName/PropertyValue, or
// PropertyOwnerEdge with PropertyName/PropertyValue - a closed set mirrored from
// converters.rs's four match arms rather than an open interface, since
// no fifth variant exists anywhere in the kept source.
type BulkInsertItem struct {
	Kind uint8

	Vertex core.Vertex
	Edge   core.EdgeKey

	PropertyOwnerVertex core.Identifier
	PropertyOwnerEdge   core.EdgeKey
	PropertyName        string
	PropertyValue       document.Value
}

// NewBulkVertexItem builds the Vertex variant.
func NewBulkVertexItem(v core.Vertex) BulkInsertItem {
	return BulkInsertItem{Kind: tagBulkVertex, Vertex: v}
}

// NewBulkEdgeItem builds the Edge variant.
func NewBulkEdgeItem(key core.EdgeKey) BulkInsertItem {
	return BulkInsertItem{Kind: tagBulkEdge, Edge: key}
}

// NewBulkVertexPropertyItem builds the VertexProperty variant.
func NewBulkVertexPropertyItem(ownerID core.Identifier, name string, value document.Value) BulkInsertItem {
	return BulkInsertItem{Kind: tagBulkVertexProperty, PropertyOwnerVertex: ownerID, PropertyName: name, PropertyValue: value}
}

// NewBulkEdgePropertyItem builds the EdgeProperty variant.
func NewBulkEdgePropertyItem(ownerKey core.EdgeKey, name string, value document.Value) BulkInsertItem {
	return BulkInsertItem{Kind: tagBulkEdgeProperty, PropertyOwnerEdge: ownerKey, PropertyName: name, PropertyValue: value}
}

// EncodeBulkInsertItems serializes a batch as a count followed by each
// item's tag and payload. Grounded on
// converters.rs::from_bulk_insert_items.
func EncodeBulkInsertItems(items []BulkInsertItem) ([]byte, error) {
	w := newWriter()
	w.writeUint32(uint32(len(items)))
	for _, item := range items {
		if err := encodeBulkInsertItem(w, item); err != nil {
			return nil, wrapErr("bulkInsertItems", err)
		}
	}
	return w.Bytes(), nil
}

func encodeBulkInsertItem(w *writer, item BulkInsertItem) error {
	switch item.Kind {
	case tagBulkVertex:
		w.writeByte(tagBulkVertex)
		w.writeBytes(EncodeVertex(item.Vertex))
		return nil

	case tagBulkEdge:
		w.writeByte(tagBulkEdge)
		w.writeBytes(EncodeEdgeKey(item.Edge))
		return nil

	case tagBulkVertexProperty:
		valueText, err := document.Marshal(item.PropertyValue)
		if err != nil {
			return wrapErr("bulkInsertItem.vertexProperty.value", err)
		}
		w.writeByte(tagBulkVertexProperty)
		w.writeIdentifier(item.PropertyOwnerVertex)
		w.writeString(item.PropertyName)
		w.writeString(valueText)
		return nil

	case tagBulkEdgeProperty:
		valueText, err := document.Marshal(item.PropertyValue)
		if err != nil {
			return wrapErr("bulkInsertItem.edgeProperty.value", err)
		}
		w.writeByte(tagBulkEdgeProperty)
		w.writeBytes(EncodeEdgeKey(item.PropertyOwnerEdge))
		w.writeString(item.PropertyName)
		w.writeString(valueText)
		return nil

	default:
		return core.NewCodecError("unknown bulk insert item kind", nil)
	}
}

// DecodeBulkInsertItems is the inverse of EncodeBulkInsertItems.
// Grounded on converters.rs::to_bulk_insert_items.
func DecodeBulkInsertItems(data []byte) ([]BulkInsertItem, error) {
	r := newReader(data)
	n, err := r.readUint32()
	if err != nil {
		return nil, wrapErr("bulkInsertItems.count", err)
	}
	items := make([]BulkInsertItem, n)
	for i := range items {
		item, err := decodeBulkInsertItem(r)
		if err != nil {
			return nil, wrapErr("bulkInsertItems.item", err)
		}
		items[i] = item
	}
	return items, nil
}

func decodeBulkInsertItem(r *reader) (BulkInsertItem, error) {
	tag, err := r.readByte()
	if err != nil {
		return BulkInsertItem{}, err
	}
	switch tag {
	case tagBulkVertex:
		vertexBytes, err := r.readBytes()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.vertex", err)
		}
		v, err := DecodeVertex(vertexBytes)
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.vertex", err)
		}
		return NewBulkVertexItem(v), nil

	case tagBulkEdge:
		keyBytes, err := r.readBytes()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.edge", err)
		}
		key, err := DecodeEdgeKey(keyBytes)
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.edge", err)
		}
		return NewBulkEdgeItem(key), nil

	case tagBulkVertexProperty:
		ownerID, err := r.readIdentifier()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.vertexProperty.ownerID", err)
		}
		name, err := r.readString()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.vertexProperty.name", err)
		}
		valueText, err := r.readString()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.vertexProperty.value", err)
		}
		value, err := document.Parse(valueText)
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.vertexProperty.value", err)
		}
		return NewBulkVertexPropertyItem(ownerID, name, value), nil

	case tagBulkEdgeProperty:
		keyBytes, err := r.readBytes()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.edgeProperty.ownerKey", err)
		}
		key, err := DecodeEdgeKey(keyBytes)
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.edgeProperty.ownerKey", err)
		}
		name, err := r.readString()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.edgeProperty.name", err)
		}
		valueText, err := r.readString()
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.edgeProperty.value", err)
		}
		value, err := document.Parse(valueText)
		if err != nil {
			return BulkInsertItem{}, wrapErr("bulkInsertItem.edgeProperty.value", err)
		}
		return NewBulkEdgePropertyItem(key, name, value), nil

	default:
		return BulkInsertItem{}, core.NewCodecError("unknown bulk insert item tag", nil)
	}
}
