// Package query implements the algebra of vertex and edge queries: a
// recursive, pipe-oriented language closed under piping between the
// two kinds of queries. See core design notes in SPEC_FULL.md §4.1.
package query

import "github.com/prahaladd/graphcore/core"

// EdgeDirection selects which endpoint of an edge a pipe projects:
// the outbound items or the inbound items.
type EdgeDirection int8

const (
	Outbound EdgeDirection = iota
	Inbound
)

// String renders the direction in its textual API form.
func (d EdgeDirection) String() string {
	switch d {
	case Outbound:
		return "outbound"
	case Inbound:
		return "inbound"
	default:
		return "invalid"
	}
}

// ParseDirection parses the textual API form, rejecting any string
// other than "outbound"/"inbound" with a validation error.
func ParseDirection(s string) (EdgeDirection, error) {
	switch s {
	case "outbound":
		return Outbound, nil
	case "inbound":
		return Inbound, nil
	default:
		return 0, core.NewValidationError("invalid edge direction: "+s, nil)
	}
}
