// Package omg is graphcore's struct-to-property convenience layer: it
// maps an ordinary Go struct's fields to and from the
// core.VertexProperty/core.EdgeProperty slices a Transaction actually
// stores, using an `ogm` struct tag for the odd field that doesn't
// share its Go name with its property name. Adapted from the
// teacher's ReflectionMapper (gograph's omg/mapper.go), which mapped a
// struct directly to a core.Vertex/core.Edge carrying a label and a
// property bag; graphcore's Vertex/Edge have no property bag of their
// own (spec §3: properties are first-class, separately-keyed values),
// so this mapper targets property slices instead.
package omg

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/prahaladd/graphcore/core"
)

const ogmTagSuffix = "ogm"

// Mapper maps between a struct value and graphcore's property model.
type Mapper interface {
	// ToVertexProperties maps v's exported fields to one VertexProperty
	// per field, owned by ownerID. v must be a struct or pointer to a
	// struct; nested structs are not supported.
	ToVertexProperties(ownerID core.Identifier, v any) ([]core.VertexProperty, error)

	// ToEdgeProperties maps v's exported fields to one EdgeProperty per
	// field, owned by ownerKey.
	ToEdgeProperties(ownerKey core.EdgeKey, v any) ([]core.EdgeProperty, error)

	// FromVertexProperties decodes props into v, which must be a
	// non-nil pointer to a struct. A property with no matching field
	// (by name, case-insensitive name, or `ogm` tag) is an error.
	FromVertexProperties(props []core.VertexProperty, v any) error

	// FromEdgeProperties decodes props into v, with the same matching
	// rules as FromVertexProperties.
	FromEdgeProperties(props []core.EdgeProperty, v any) error
}

// ReflectionMapper is the default Mapper, implemented with reflect and
// mitchellh/mapstructure.
type ReflectionMapper struct{}

// NewReflectionMapper builds a ReflectionMapper.
func NewReflectionMapper() *ReflectionMapper {
	return &ReflectionMapper{}
}

func (rm *ReflectionMapper) ToVertexProperties(ownerID core.Identifier, v any) ([]core.VertexProperty, error) {
	fields, err := rm.performMap(v)
	if err != nil {
		return nil, err
	}
	props := make([]core.VertexProperty, 0, len(fields))
	for name, value := range fields {
		props = append(props, core.NewVertexProperty(ownerID, name, value))
	}
	return props, nil
}

func (rm *ReflectionMapper) ToEdgeProperties(ownerKey core.EdgeKey, v any) ([]core.EdgeProperty, error) {
	fields, err := rm.performMap(v)
	if err != nil {
		return nil, err
	}
	props := make([]core.EdgeProperty, 0, len(fields))
	for name, value := range fields {
		props = append(props, core.NewEdgeProperty(ownerKey, name, value))
	}
	return props, nil
}

func (rm *ReflectionMapper) FromVertexProperties(props []core.VertexProperty, v any) error {
	values := make(map[string]any, len(props))
	for _, p := range props {
		values[p.Name] = p.Value
	}
	return rm.performDecode(values, v)
}

func (rm *ReflectionMapper) FromEdgeProperties(props []core.EdgeProperty, v any) error {
	values := make(map[string]any, len(props))
	for _, p := range props {
		values[p.Name] = p.Value
	}
	return rm.performDecode(values, v)
}

// performMap walks v's struct fields, keying each by its `ogm` tag if
// present, else its Go field name. v must be a struct or a pointer to
// one (one level of indirection only, matching the teacher's
// ReflectionMapper).
func (rm *ReflectionMapper) performMap(v any) (map[string]any, error) {
	val := reflect.ValueOf(v)
	typ := reflect.TypeOf(v)

	switch typ.Kind() {
	case reflect.Struct:
		// fall through below
	case reflect.Ptr:
		typ = typ.Elem()
		val = reflect.Indirect(val)
	default:
		return nil, fmt.Errorf("omg: passed in value must be a struct or pointer to a struct")
	}

	fields := make(map[string]any, val.NumField())
	for i := 0; i < val.NumField(); i++ {
		if !typ.Field(i).IsExported() {
			continue
		}
		key := typ.Field(i).Name
		if tag := typ.Field(i).Tag.Get(ogmTagSuffix); tag != "" {
			key = tag
		}
		fields[key] = val.Field(i).Interface()
	}
	return fields, nil
}

// performDecode matches each entry of values against v's fields by
// `ogm` tag, exact name, lowercase name, or uppercase name - the same
// case-insensitive fallback chain the teacher's performDecode used to
// tolerate backends (like AgensGraph) that lowercase property names on
// the way back. An unmatched value is an error rather than a silent
// drop, since a caller decoding into a known struct shape wants to
// hear about a property it didn't expect.
func (rm *ReflectionMapper) performDecode(values map[string]any, v any) error {
	typ := reflect.TypeOf(v)
	if typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("omg: passed in value must be a pointer to a struct type")
	}
	elemType := typ.Elem()

	fieldTagMapping := make(map[string]string, elemType.NumField())
	fieldMappingByName := make(map[string]reflect.StructField, elemType.NumField()*3)
	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		if tag := field.Tag.Get(ogmTagSuffix); tag != "" {
			fieldTagMapping[tag] = field.Name
		}
		fieldMappingByName[field.Name] = field
		fieldMappingByName[strings.ToLower(field.Name)] = field
		fieldMappingByName[strings.ToUpper(field.Name)] = field
	}

	decodeMap := make(map[string]any, len(values))
	for key, value := range values {
		field, ok := fieldMappingByName[key]
		if !ok {
			originalName, ok := fieldTagMapping[key]
			if !ok {
				return fmt.Errorf("omg: unknown field %s", key)
			}
			field = fieldMappingByName[originalName]
		}
		decodeMap[field.Name] = value
	}

	return mapstructure.Decode(decodeMap, v)
}
