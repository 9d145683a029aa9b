package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/document"
	"github.com/prahaladd/graphcore/query"
)

// transaction is the Neo4j-backed datastore.Transaction. Each method
// opens its own session and runs one managed transaction, mirroring
// Neo4jConnection.ExecuteQuery's read/write session dispatch
// (neo/executor.go) - generalized here into the shared run helper
// below instead of being reimplemented per call.
type transaction struct {
	driver neo4j.DriverWithContext
}

func (t *transaction) run(mode neo4j.AccessMode, text string, params map[string]any) ([]*neo4j.Record, error) {
	ctx := context.Background()
	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode})
	defer session.Close(ctx)

	work := session.ExecuteRead
	if mode == neo4j.AccessModeWrite {
		work = session.ExecuteWrite
	}

	result, err := work(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, text, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	}, neo4j.WithTxTimeout(defaultTimeout))
	if err != nil {
		return nil, core.NewBackendError("remote: query failed", err)
	}
	return result.([]*neo4j.Record), nil
}

func decodeVertexRecord(rec *neo4j.Record, varName string) (core.Vertex, error) {
	raw, ok := rec.Get(varName)
	if !ok {
		return core.Vertex{}, core.NewBackendError("remote: missing column "+varName, nil)
	}
	node, ok := raw.(neo4j.Node)
	if !ok {
		return core.Vertex{}, core.NewBackendError("remote: column "+varName+" is not a node", nil)
	}
	idStr, _ := node.Props[idProperty].(string)
	id, err := core.IdentifierFromString(idStr)
	if err != nil {
		return core.Vertex{}, err
	}
	t := core.EmptyType
	if len(node.Labels) > 0 {
		t, err = core.NewType(node.Labels[0])
		if err != nil {
			return core.Vertex{}, err
		}
	}
	return core.WithID(id, t), nil
}

func decodeEdgeRecord(rec *neo4j.Record, edgeVarName string) (core.Edge, error) {
	raw, ok := rec.Get(edgeVarName)
	if !ok {
		return core.Edge{}, core.NewBackendError("remote: missing column "+edgeVarName, nil)
	}
	rel, ok := raw.(neo4j.Relationship)
	if !ok {
		return core.Edge{}, core.NewBackendError("remote: column "+edgeVarName+" is not a relationship", nil)
	}

	outboundRaw, _ := rec.Get("outboundId")
	inboundRaw, _ := rec.Get("inboundId")
	outboundID, err := core.IdentifierFromString(fmt.Sprint(outboundRaw))
	if err != nil {
		return core.Edge{}, err
	}
	inboundID, err := core.IdentifierFromString(fmt.Sprint(inboundRaw))
	if err != nil {
		return core.Edge{}, err
	}
	edgeType, err := core.NewType(rel.Type)
	if err != nil {
		return core.Edge{}, err
	}

	var created time.Time
	if secs, ok := rel.Props[createdProperty].(int64); ok {
		created = time.Unix(secs, 0).UTC()
	}

	return core.NewEdge(core.NewEdgeKey(outboundID, edgeType, inboundID), created), nil
}

func (t *transaction) CreateVertex(v core.Vertex) (bool, error) {
	existing, err := t.run(neo4j.AccessModeRead,
		fmt.Sprintf("MATCH (n {%s: $id}) RETURN n LIMIT 1", idProperty),
		map[string]any{"id": v.ID.String()})
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	text := fmt.Sprintf("CREATE (n:`%s` {%s: $id})", v.T.String(), idProperty)
	if _, err := t.run(neo4j.AccessModeWrite, text, map[string]any{"id": v.ID.String()}); err != nil {
		return false, err
	}
	return true, nil
}

func (t *transaction) GetVertices(q query.VertexQuery) ([]core.Vertex, error) {
	built, err := translateVertexQuery(q, "v", "q_")
	if err != nil {
		return nil, err
	}
	records, err := t.run(neo4j.AccessModeRead, built.text, built.params)
	if err != nil {
		return nil, err
	}
	vertices := make([]core.Vertex, 0, len(records))
	for _, rec := range records {
		v, err := decodeVertexRecord(rec, "v")
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
	}
	return vertices, nil
}

func (t *transaction) DeleteVertices(q query.VertexQuery) error {
	vertices, err := t.GetVertices(q)
	if err != nil {
		return err
	}
	for _, v := range vertices {
		text := fmt.Sprintf("MATCH (n {%s: $id}) DETACH DELETE n", idProperty)
		if _, err := t.run(neo4j.AccessModeWrite, text, map[string]any{"id": v.ID.String()}); err != nil {
			return err
		}
	}
	return nil
}

func (t *transaction) GetVertexCount() (uint64, error) {
	records, err := t.run(neo4j.AccessModeRead, "MATCH (n) RETURN count(n) AS c", nil)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	count, _ := records[0].Get("c")
	n, _ := count.(int64)
	return uint64(n), nil
}

func (t *transaction) CreateEdge(key core.EdgeKey) (bool, error) {
	text := fmt.Sprintf(
		"MATCH (a {%s: $out}), (b {%s: $in}) MERGE (a)-[r:`%s`]->(b) SET r.%s = $now RETURN r",
		idProperty, idProperty, key.T.String(), createdProperty)
	params := map[string]any{
		"out": key.OutboundID.String(),
		"in":  key.InboundID.String(),
		"now": time.Now().UTC().Unix(),
	}
	records, err := t.run(neo4j.AccessModeWrite, text, params)
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

func (t *transaction) GetEdges(q query.EdgeQuery) ([]core.Edge, error) {
	built, err := translateEdgeQuery(q, "r", "q_")
	if err != nil {
		return nil, err
	}
	records, err := t.run(neo4j.AccessModeRead, built.text, built.params)
	if err != nil {
		return nil, err
	}
	edges := make([]core.Edge, 0, len(records))
	for _, rec := range records {
		e, err := decodeEdgeRecord(rec, "r")
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, nil
}

func (t *transaction) DeleteEdges(q query.EdgeQuery) error {
	edges, err := t.GetEdges(q)
	if err != nil {
		return err
	}
	for _, e := range edges {
		text := fmt.Sprintf(
			"MATCH (a {%s: $out})-[r:`%s`]->(b {%s: $in}) DELETE r",
			idProperty, e.Key.T.String(), idProperty)
		params := map[string]any{"out": e.Key.OutboundID.String(), "in": e.Key.InboundID.String()}
		if _, err := t.run(neo4j.AccessModeWrite, text, params); err != nil {
			return err
		}
	}
	return nil
}

func (t *transaction) GetEdgeCount(id core.Identifier, typeFilter *core.Type, direction query.EdgeDirection) (uint64, error) {
	edges, err := t.GetEdges(query.EdgePipe{
		VertexQuery: query.NewVerticesByID(id),
		Direction:   direction,
		TypeFilter:  typeFilter,
		Limit:       ^uint32(0),
	})
	if err != nil {
		return 0, err
	}
	return uint64(len(edges)), nil
}

func (t *transaction) GetVertexProperties(q query.VertexQuery, name string) ([]core.VertexProperty, error) {
	vertices, err := t.GetVertices(q)
	if err != nil {
		return nil, err
	}
	var props []core.VertexProperty
	for _, v := range vertices {
		text := fmt.Sprintf("MATCH (n {%s: $id}) RETURN n[$name] AS val", idProperty)
		records, err := t.run(neo4j.AccessModeRead, text, map[string]any{"id": v.ID.String(), "name": name})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			continue
		}
		raw, ok := records[0].Get("val")
		if !ok || raw == nil {
			continue
		}
		value, err := document.Parse(fmt.Sprint(raw))
		if err != nil {
			return nil, core.NewCodecError("remote: malformed vertex property value", err)
		}
		props = append(props, core.NewVertexProperty(v.ID, name, value))
	}
	return props, nil
}

func (t *transaction) SetVertexProperties(q query.VertexQuery, name string, value document.Value) error {
	vertices, err := t.GetVertices(q)
	if err != nil {
		return err
	}
	valueText, err := document.Marshal(value)
	if err != nil {
		return core.NewCodecError("remote: cannot marshal vertex property value", err)
	}
	for _, v := range vertices {
		text := fmt.Sprintf("MATCH (n {%s: $id}) SET n[$name] = $value", idProperty)
		params := map[string]any{"id": v.ID.String(), "name": name, "value": valueText}
		if _, err := t.run(neo4j.AccessModeWrite, text, params); err != nil {
			return err
		}
	}
	return nil
}

func (t *transaction) DeleteVertexProperties(q query.VertexQuery, name string) error {
	vertices, err := t.GetVertices(q)
	if err != nil {
		return err
	}
	for _, v := range vertices {
		text := fmt.Sprintf("MATCH (n {%s: $id}) REMOVE n[$name]", idProperty)
		params := map[string]any{"id": v.ID.String(), "name": name}
		if _, err := t.run(neo4j.AccessModeWrite, text, params); err != nil {
			return err
		}
	}
	return nil
}

func (t *transaction) GetEdgeProperties(q query.EdgeQuery, name string) ([]core.EdgeProperty, error) {
	edges, err := t.GetEdges(q)
	if err != nil {
		return nil, err
	}
	var props []core.EdgeProperty
	for _, e := range edges {
		text := fmt.Sprintf(
			"MATCH (a {%s: $out})-[r:`%s`]->(b {%s: $in}) RETURN r[$name] AS val",
			idProperty, e.Key.T.String(), idProperty)
		params := map[string]any{"out": e.Key.OutboundID.String(), "in": e.Key.InboundID.String(), "name": name}
		records, err := t.run(neo4j.AccessModeRead, text, params)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			continue
		}
		raw, ok := records[0].Get("val")
		if !ok || raw == nil {
			continue
		}
		value, err := document.Parse(fmt.Sprint(raw))
		if err != nil {
			return nil, core.NewCodecError("remote: malformed edge property value", err)
		}
		props = append(props, core.NewEdgeProperty(e.Key, name, value))
	}
	return props, nil
}

func (t *transaction) SetEdgeProperties(q query.EdgeQuery, name string, value document.Value) error {
	edges, err := t.GetEdges(q)
	if err != nil {
		return err
	}
	valueText, err := document.Marshal(value)
	if err != nil {
		return core.NewCodecError("remote: cannot marshal edge property value", err)
	}
	for _, e := range edges {
		text := fmt.Sprintf(
			"MATCH (a {%s: $out})-[r:`%s`]->(b {%s: $in}) SET r[$name] = $value",
			idProperty, e.Key.T.String(), idProperty)
		params := map[string]any{"out": e.Key.OutboundID.String(), "in": e.Key.InboundID.String(), "name": name, "value": valueText}
		if _, err := t.run(neo4j.AccessModeWrite, text, params); err != nil {
			return err
		}
	}
	return nil
}

func (t *transaction) DeleteEdgeProperties(q query.EdgeQuery, name string) error {
	edges, err := t.GetEdges(q)
	if err != nil {
		return err
	}
	for _, e := range edges {
		text := fmt.Sprintf(
			"MATCH (a {%s: $out})-[r:`%s`]->(b {%s: $in}) REMOVE r[$name]",
			idProperty, e.Key.T.String(), idProperty)
		params := map[string]any{"out": e.Key.OutboundID.String(), "in": e.Key.InboundID.String(), "name": name}
		if _, err := t.run(neo4j.AccessModeWrite, text, params); err != nil {
			return err
		}
	}
	return nil
}
