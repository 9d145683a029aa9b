// Package remote is a second datastore.Datastore implementation,
// backed by Neo4j, that exists to demonstrate the capability-set
// polymorphism spec §9 calls out: any backend implementing
// datastore.Datastore/Transaction is a drop-in replacement for the
// in-memory one from package memory. It is explicitly NOT the
// persistent backend spec §1 scopes out of core - it is a satellite,
// optional, network-backed alternative, not graphcore's durability
// story.
package remote

import (
	"fmt"
	"strings"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/query"
)

// Vertices are stored as nodes carrying a single "gcid" property
// holding the identifier's string form (the node's label is the
// vertex's Type). Edges are stored as relationships typed by their
// Type, carrying a "gcCreated" property holding Unix seconds - the
// same granularity the wire codec uses for Edge.CreatedDatetime (see
// codec/edge.go's comment on the nanosecond/second asymmetry). The
// in-memory engine, by contrast, keeps the full time.Now() value.
const (
	idProperty      = "gcid"
	createdProperty = "gcCreated"
)

// cypherQuery is a built statement plus its bound parameters -
// graphcore's equivalent of the (query string, error) pair
// VertexQueryBuilder.Build/EdgeQueryBuilder.Build returned in the
// teacher, generalized to carry parameters too since graphcore's
// queries are values, not pre-filled selector maps that get inlined as
// literal text.
type cypherQuery struct {
	text   string
	params map[string]any
}

func mergeParams(dst map[string]any, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

// translateVertexQuery lowers a query.VertexQuery into a statement
// whose single returned column, varName, is bound to the matching
// nodes. Grounded on VertexQueryBuilder.Build's MATCH/selector/filter
// assembly (query/cypher/vertex_query_builder.go), retargeted from
// label+selector-map inputs onto the VertexQuery algebra; a VertexPipe
// is expressed as a CALL subquery over its EdgeQuery translation
// followed by a node lookup on the projected endpoint id, which keeps
// the translation fully recursive without needing Cypher's variable
// scope to span nested MATCH clauses directly.
func translateVertexQuery(q query.VertexQuery, varName, paramPrefix string) (cypherQuery, error) {
	switch vq := q.(type) {
	case query.AllVertices:
		params := map[string]any{paramPrefix + "limit": int64(vq.Limit)}
		where := ""
		if vq.StartID != nil {
			where = fmt.Sprintf(" WHERE %s.%s >= $%s", varName, idProperty, paramPrefix+"startID")
			params[paramPrefix+"startID"] = vq.StartID.String()
		}
		text := fmt.Sprintf("MATCH (%s)%s RETURN %s ORDER BY %s.%s LIMIT $%s",
			varName, where, varName, varName, idProperty, paramPrefix+"limit")
		return cypherQuery{text: text, params: params}, nil

	case query.VerticesByID:
		ids := make([]string, 0, len(vq.IDs))
		for _, id := range vq.IDs {
			ids = append(ids, id.String())
		}
		params := map[string]any{paramPrefix + "ids": ids}
		text := fmt.Sprintf("MATCH (%s) WHERE %s.%s IN $%s RETURN %s",
			varName, varName, idProperty, paramPrefix+"ids", varName)
		return cypherQuery{text: text, params: params}, nil

	case query.VertexPipe:
		edgeVarName := varName + "_e"
		edge, err := translateEdgeQuery(vq.EdgeQuery, edgeVarName, paramPrefix+"e_")
		if err != nil {
			return cypherQuery{}, err
		}
		idCol := "outboundId"
		if vq.Direction == query.Inbound {
			idCol = "inboundId"
		}
		text := fmt.Sprintf(
			"CALL { %s } WITH %s AS %s MATCH (%s {%s: %s}) RETURN %s LIMIT %d",
			edge.text, idCol, varName+"_pipeId", varName, idProperty, varName+"_pipeId", varName, vq.Limit,
		)
		return cypherQuery{text: text, params: edge.params}, nil

	default:
		return cypherQuery{}, core.NewValidationError("remote: unknown vertex query variant", nil)
	}
}

// translateEdgeQuery lowers a query.EdgeQuery into a statement whose
// three returned columns are edgeVarName (the relationship),
// outboundId, and inboundId - naming the endpoints by role rather than
// by Cypher pattern position, so callers don't need to know which
// literal direction the underlying MATCH pattern used. Grounded on
// EdgeQueryBuilder.Build (query/cypher/edge_query_builder.go).
func translateEdgeQuery(q query.EdgeQuery, edgeVarName, paramPrefix string) (cypherQuery, error) {
	switch eq := q.(type) {
	case query.EdgesByKey:
		aVar := paramPrefix + "a"
		bVar := paramPrefix + "b"
		var clauses []string
		params := map[string]any{}
		for i, key := range eq.Keys {
			outParam := fmt.Sprintf("%sk%d_out", paramPrefix, i)
			inParam := fmt.Sprintf("%sk%d_in", paramPrefix, i)
			typeParam := fmt.Sprintf("%sk%d_type", paramPrefix, i)
			params[outParam] = key.OutboundID.String()
			params[inParam] = key.InboundID.String()
			params[typeParam] = key.T.String()
			clauses = append(clauses, fmt.Sprintf(
				"(%s.%s = $%s AND type(%s) = $%s AND %s.%s = $%s)",
				aVar, idProperty, outParam, edgeVarName, typeParam, bVar, idProperty, inParam))
		}
		where := "false"
		if len(clauses) > 0 {
			where = strings.Join(clauses, " OR ")
		}
		text := fmt.Sprintf(
			"MATCH (%s)-[%s]->(%s) WHERE %s RETURN %s AS %s, %s.%s AS outboundId, %s.%s AS inboundId",
			aVar, edgeVarName, bVar, where, edgeVarName, edgeVarName, aVar, idProperty, bVar, idProperty)
		return cypherQuery{text: text, params: params}, nil

	case query.EdgePipe:
		anchorVar := paramPrefix + "anchor"
		otherVar := paramPrefix + "other"
		inner, err := translateVertexQuery(eq.VertexQuery, anchorVar, paramPrefix+"v_")
		if err != nil {
			return cypherQuery{}, err
		}

		typeExpr := ""
		if eq.TypeFilter != nil {
			typeExpr = fmt.Sprintf(":`%s`", eq.TypeFilter.String())
		}

		var pattern, outboundExpr, inboundExpr string
		if eq.Direction == query.Outbound {
			pattern = fmt.Sprintf("(%s)-[%s%s]->(%s)", anchorVar, edgeVarName, typeExpr, otherVar)
			outboundExpr = anchorVar + "." + idProperty
			inboundExpr = otherVar + "." + idProperty
		} else {
			pattern = fmt.Sprintf("(%s)-[%s%s]->(%s)", otherVar, edgeVarName, typeExpr, anchorVar)
			outboundExpr = otherVar + "." + idProperty
			inboundExpr = anchorVar + "." + idProperty
		}

		params := map[string]any{}
		mergeParams(params, inner.params)
		var whereParts []string
		if eq.HighFilter != nil {
			whereParts = append(whereParts, fmt.Sprintf("%s.%s <= $%s", edgeVarName, createdProperty, paramPrefix+"high"))
			params[paramPrefix+"high"] = eq.HighFilter.Unix()
		}
		if eq.LowFilter != nil {
			whereParts = append(whereParts, fmt.Sprintf("%s.%s >= $%s", edgeVarName, createdProperty, paramPrefix+"low"))
			params[paramPrefix+"low"] = eq.LowFilter.Unix()
		}
		where := "true"
		if len(whereParts) > 0 {
			where = strings.Join(whereParts, " AND ")
		}

		text := fmt.Sprintf(
			"CALL { %s } WITH %s MATCH %s WHERE %s RETURN %s AS %s, %s AS outboundId, %s AS inboundId ORDER BY %s.%s LIMIT %d",
			inner.text, anchorVar, pattern, where, edgeVarName, edgeVarName, outboundExpr, inboundExpr, edgeVarName, createdProperty, eq.Limit,
		)
		return cypherQuery{text: text, params: params}, nil

	default:
		return cypherQuery{}, core.NewValidationError("remote: unknown edge query variant", nil)
	}
}
