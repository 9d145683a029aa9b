package omg

import (
	"testing"

	"github.com/prahaladd/graphcore/core"
	"github.com/stretchr/testify/suite"
)

type MapperTestSuite struct {
	suite.Suite
	mapper Mapper
}

func (suite *MapperTestSuite) SetupTest() {
	suite.mapper = NewReflectionMapper()
}

func propValue(t *testing.T, props []core.VertexProperty, name string) (any, bool) {
	t.Helper()
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

func edgePropValue(props []core.EdgeProperty, name string) (any, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

func (suite *MapperTestSuite) TestToVertexPropertiesUsesOgmTag() {
	owner := core.NewIdentifier()
	props, err := suite.mapper.ToVertexProperties(owner, person{Name: "Tom", Age: 12, Department: "Dev"})
	suite.NoError(err)
	suite.Len(props, 3)

	name, ok := propValue(suite.T(), props, "name")
	suite.True(ok)
	suite.Equal("Tom", name)

	age, ok := propValue(suite.T(), props, "age")
	suite.True(ok)
	suite.Equal(int32(12), age)

	for _, p := range props {
		suite.True(p.OwnerID.Compare(owner) == 0)
	}
}

func (suite *MapperTestSuite) TestToVertexPropertiesAcceptsPointer() {
	owner := core.NewIdentifier()
	ts := person{Name: "Tom", Age: 12, Department: "Dev"}
	props, err := suite.mapper.ToVertexProperties(owner, &ts)
	suite.NoError(err)
	suite.Len(props, 3)
}

func (suite *MapperTestSuite) TestToVertexPropertiesFieldsWithoutTagsUseFieldName() {
	owner := core.NewIdentifier()
	props, err := suite.mapper.ToVertexProperties(owner, testVertex{Field1: "Tom", Field2: "Jerry"})
	suite.NoError(err)
	v1, ok := propValue(suite.T(), props, "Field1")
	suite.True(ok)
	suite.Equal("Tom", v1)
}

func (suite *MapperTestSuite) TestToEdgePropertiesUsesOgmTag() {
	ownerKey := core.NewEdgeKey(core.NewIdentifier(), mustType(suite.T(), "livesin"), core.NewIdentifier())
	props, err := suite.mapper.ToEdgeProperties(ownerKey, livesin{Since: 1990})
	suite.NoError(err)
	since, ok := edgePropValue(props, "since")
	suite.True(ok)
	suite.Equal(int32(1990), since)
}

func (suite *MapperTestSuite) TestFromVertexPropertiesRoundTrips() {
	owner := core.NewIdentifier()
	ts := person{Name: "Tom", Age: 12, Department: "Dev"}
	props, err := suite.mapper.ToVertexProperties(owner, ts)
	suite.NoError(err)

	var ts2 person
	err = suite.mapper.FromVertexProperties(props, &ts2)
	suite.NoError(err)
	suite.Equal(ts, ts2)
}

func (suite *MapperTestSuite) TestFromVertexPropertiesRejectsNonPointer() {
	owner := core.NewIdentifier()
	props, err := suite.mapper.ToVertexProperties(owner, person{Name: "Tom"})
	suite.NoError(err)

	var ts2 person
	err = suite.mapper.FromVertexProperties(props, ts2)
	suite.Error(err)
}

func (suite *MapperTestSuite) TestFromVertexPropertiesRejectsUnknownField() {
	owner := core.NewIdentifier()
	props := []core.VertexProperty{core.NewVertexProperty(owner, "notAField", "value")}

	var ts2 person
	err := suite.mapper.FromVertexProperties(props, &ts2)
	suite.Error(err)
}

func (suite *MapperTestSuite) TestFromEdgePropertiesRoundTrips() {
	ownerKey := core.NewEdgeKey(core.NewIdentifier(), mustType(suite.T(), "livesin"), core.NewIdentifier())
	ts := livesin{Since: 1990}
	props, err := suite.mapper.ToEdgeProperties(ownerKey, ts)
	suite.NoError(err)

	var ts2 livesin
	err = suite.mapper.FromEdgeProperties(props, &ts2)
	suite.NoError(err)
	suite.Equal(ts, ts2)
}

func mustType(t *testing.T, s string) core.Type {
	t.Helper()
	typ, err := core.NewType(s)
	if err != nil {
		t.Fatalf("unexpected error building type %q: %v", s, err)
	}
	return typ
}

func TestMapperTestSuite(t *testing.T) {
	suite.Run(t, new(MapperTestSuite))
}

type person struct {
	Name       string `ogm:"name"`
	Age        int32  `ogm:"age"`
	Department string `ogm:"dept"`
}

type livesin struct {
	Since int32 `ogm:"since"`
}

type testVertex struct {
	Field1 string
	Field2 string
}
