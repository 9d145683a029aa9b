package memory

import (
	"testing"

	"github.com/prahaladd/graphcore/core"
	"github.com/prahaladd/graphcore/query"
	"github.com/stretchr/testify/suite"
)

func mustType(t *testing.T, s string) core.Type {
	t.Helper()
	typ, err := core.NewType(s)
	if err != nil {
		t.Fatalf("unexpected error building type %q: %v", s, err)
	}
	return typ
}

type TransactionTestSuite struct {
	suite.Suite
	ds *internalDatastore
	tx *transaction
}

func (s *TransactionTestSuite) SetupTest() {
	s.ds = NewDatastore()
	tx, err := s.ds.Transaction()
	s.Require().NoError(err)
	s.tx = tx.(*transaction)
}

func (s *TransactionTestSuite) TestCreateVertexRejectsDuplicateID() {
	person := mustType(s.T(), "person")
	v := core.NewVertex(person)

	created, err := s.tx.CreateVertex(v)
	s.NoError(err)
	s.True(created)

	created, err = s.tx.CreateVertex(core.WithID(v.ID, person))
	s.NoError(err)
	s.False(created)
}

func (s *TransactionTestSuite) TestGetVertexCountReflectsInserts() {
	person := mustType(s.T(), "person")
	count, err := s.tx.GetVertexCount()
	s.NoError(err)
	s.EqualValues(0, count)

	_, err = s.tx.CreateVertex(core.NewVertex(person))
	s.NoError(err)
	_, err = s.tx.CreateVertex(core.NewVertex(person))
	s.NoError(err)

	count, err = s.tx.GetVertexCount()
	s.NoError(err)
	s.EqualValues(2, count)
}

func (s *TransactionTestSuite) TestCreateEdgeRequiresBothEndpoints() {
	person := mustType(s.T(), "person")
	follows := mustType(s.T(), "follows")

	tom := core.NewVertex(person)
	jerry := core.NewVertex(person)
	_, err := s.tx.CreateVertex(tom)
	s.Require().NoError(err)

	key := core.NewEdgeKey(tom.ID, follows, jerry.ID)
	created, err := s.tx.CreateEdge(key)
	s.NoError(err)
	s.False(created, "jerry does not exist yet, so the edge must not be created")

	_, err = s.tx.CreateVertex(jerry)
	s.Require().NoError(err)

	created, err = s.tx.CreateEdge(key)
	s.NoError(err)
	s.True(created)
}

func (s *TransactionTestSuite) TestGetVerticesByID() {
	person := mustType(s.T(), "person")
	tom := core.NewVertex(person)
	jerry := core.NewVertex(person)
	_, err := s.tx.CreateVertex(tom)
	s.Require().NoError(err)
	_, err = s.tx.CreateVertex(jerry)
	s.Require().NoError(err)

	missing := core.NewIdentifier()
	vertices, err := s.tx.GetVertices(query.NewVerticesByID(tom.ID, missing, jerry.ID))
	s.NoError(err)
	s.Len(vertices, 2, "a missing id must be silently dropped, not error or null-pad")
}

func (s *TransactionTestSuite) TestDeleteVerticesCascadesToEdgesAndProperties() {
	person := mustType(s.T(), "person")
	follows := mustType(s.T(), "follows")

	tom := core.NewVertex(person)
	jerry := core.NewVertex(person)
	_, err := s.tx.CreateVertex(tom)
	s.Require().NoError(err)
	_, err = s.tx.CreateVertex(jerry)
	s.Require().NoError(err)

	key := core.NewEdgeKey(tom.ID, follows, jerry.ID)
	_, err = s.tx.CreateEdge(key)
	s.Require().NoError(err)

	s.Require().NoError(s.tx.SetVertexProperties(query.NewVerticesByID(tom.ID), "name", "Tom"))
	s.Require().NoError(s.tx.SetEdgeProperties(query.NewEdgesByKey(key), "since", "1990"))

	s.Require().NoError(s.tx.DeleteVertices(query.NewVerticesByID(tom.ID)))

	edges, err := s.tx.GetEdges(query.NewEdgesByKey(key))
	s.NoError(err)
	s.Empty(edges, "deleting an endpoint must cascade to the edge")

	props, err := s.tx.GetVertexProperties(query.NewVerticesByID(tom.ID), "name")
	s.NoError(err)
	s.Empty(props, "deleting a vertex must cascade to its properties")

	edgeProps, err := s.tx.GetEdgeProperties(query.NewEdgesByKey(key), "since")
	s.NoError(err)
	s.Empty(edgeProps, "deleting an edge's endpoint must cascade to the edge's properties")
}

func (s *TransactionTestSuite) TestOutboundPipeExploitsKeyOrdering() {
	person := mustType(s.T(), "person")
	follows := mustType(s.T(), "follows")
	likes := mustType(s.T(), "likes")

	tom := core.NewVertex(person)
	jerry := core.NewVertex(person)
	spike := core.NewVertex(person)
	for _, v := range []core.Vertex{tom, jerry, spike} {
		_, err := s.tx.CreateVertex(v)
		s.Require().NoError(err)
	}

	followsKey := core.NewEdgeKey(tom.ID, follows, jerry.ID)
	likesKey := core.NewEdgeKey(tom.ID, likes, spike.ID)
	_, err := s.tx.CreateEdge(followsKey)
	s.Require().NoError(err)
	_, err = s.tx.CreateEdge(likesKey)
	s.Require().NoError(err)

	edges, err := s.tx.GetEdges(query.EdgePipe{
		VertexQuery: query.NewVerticesByID(tom.ID),
		Direction:   query.Outbound,
		TypeFilter:  &follows,
		Limit:       10,
	})
	s.NoError(err)
	s.Len(edges, 1)
	s.Equal(followsKey.Compare(edges[0].Key), 0)
}

func (s *TransactionTestSuite) TestInboundPipeScansCandidates() {
	person := mustType(s.T(), "person")
	follows := mustType(s.T(), "follows")

	tom := core.NewVertex(person)
	jerry := core.NewVertex(person)
	_, err := s.tx.CreateVertex(tom)
	s.Require().NoError(err)
	_, err = s.tx.CreateVertex(jerry)
	s.Require().NoError(err)

	key := core.NewEdgeKey(tom.ID, follows, jerry.ID)
	_, err = s.tx.CreateEdge(key)
	s.Require().NoError(err)

	edges, err := s.tx.GetEdges(query.EdgePipe{
		VertexQuery: query.NewVerticesByID(jerry.ID),
		Direction:   query.Inbound,
		Limit:       10,
	})
	s.NoError(err)
	s.Require().Len(edges, 1)
	s.Equal(0, key.Compare(edges[0].Key))

	count, err := s.tx.GetEdgeCount(jerry.ID, nil, query.Inbound)
	s.NoError(err)
	s.EqualValues(1, count)
}

func (s *TransactionTestSuite) TestSetVertexPropertiesOverwritesExistingValue() {
	person := mustType(s.T(), "person")
	tom := core.NewVertex(person)
	_, err := s.tx.CreateVertex(tom)
	s.Require().NoError(err)

	s.Require().NoError(s.tx.SetVertexProperties(query.NewVerticesByID(tom.ID), "name", "Tom"))
	s.Require().NoError(s.tx.SetVertexProperties(query.NewVerticesByID(tom.ID), "name", "Tommy"))

	props, err := s.tx.GetVertexProperties(query.NewVerticesByID(tom.ID), "name")
	s.NoError(err)
	s.Require().Len(props, 1)
	s.Equal("Tommy", props[0].Value)
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}
