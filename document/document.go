// Package document defines the opaque structured value stored as a
// vertex or edge property.
package document

import (
	"encoding/json"
	"strings"
)

// Value is an opaque JSON-compatible document: null, boolean, number,
// string, array, or object. graphcore never interprets the contents of
// a Value; it is passed through to and from the wire codec as-is.
type Value = any

// Parse decodes a JSON text payload into a Value, preserving full JSON
// fidelity (numbers decode as json.Number, never as lossy float64).
func Parse(text string) (Value, error) {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	var v Value
	if err := decoder.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Marshal encodes a Value as JSON text for wire transport.
func Marshal(v Value) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
