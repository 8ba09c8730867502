package graph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/minhyukpark/cm/graph"
)

type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) TestBuilderRejectsSelfLoop() {
	b := graph.NewBuilder()
	require.NoError(s.T(), b.AddEdge(0, 1))
	err := b.AddEdge(2, 2)
	require.True(s.T(), errors.Is(err, graph.ErrSelfLoop))
}

func (s *GraphSuite) TestBuilderRejectsDuplicateEdge() {
	b := graph.NewBuilder()
	require.NoError(s.T(), b.AddEdge(0, 1))
	err := b.AddEdge(1, 0)
	require.True(s.T(), errors.Is(err, graph.ErrDuplicateEdge))
}

func (s *GraphSuite) TestBuilderRejectsNegativeID() {
	b := graph.NewBuilder()
	err := b.AddEdge(-1, 0)
	require.True(s.T(), errors.Is(err, graph.ErrNegativeID))
}

func (s *GraphSuite) TestTriangleAdjacency() {
	b := graph.NewBuilder()
	require.NoError(s.T(), b.AddEdge(0, 1))
	require.NoError(s.T(), b.AddEdge(1, 2))
	require.NoError(s.T(), b.AddEdge(0, 2))
	g := b.Build()

	require.Equal(s.T(), 3, g.N())
	require.Equal(s.T(), 3, g.NumEdges())
	require.Equal(s.T(), 2, g.Degree(0))
	require.ElementsMatch(s.T(), []int32{1, 2}, g.Neighbors(0))
	require.True(s.T(), g.HasEdge(0, 1))
	require.True(s.T(), g.HasEdge(1, 2))
}

func (s *GraphSuite) TestLoadEdgeList() {
	r := strings.NewReader("0\t1\n1\t2\n0\t2\n")
	g, err := graph.LoadEdgeList(r)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.N())
	require.Equal(s.T(), 3, g.NumEdges())
}

func (s *GraphSuite) TestLoadEdgeListRejectsMalformedLine() {
	r := strings.NewReader("0\t1\nnotanumber\t2\n")
	_, err := graph.LoadEdgeList(r)
	require.Error(s.T(), err)
}

func (s *GraphSuite) TestLoadEdgeListSkipsBlankLines() {
	r := strings.NewReader("0\t1\n\n1\t2\n")
	g, err := graph.LoadEdgeList(r)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.N())
}

// TestModularityTriangleSingleCommunity checks that modularity(S) is the
// Newman modularity of the bipartition {S, V\S}.
func (s *GraphSuite) TestModularityTriangleSingleCommunity() {
	r := strings.NewReader("0\t1\n1\t2\n0\t2\n")
	g, err := graph.LoadEdgeList(r)
	require.NoError(s.T(), err)

	whole := map[int32]struct{}{0: {}, 1: {}, 2: {}}
	// S = V means q_rest's terms are all zero; Q = 1 - 1 = 0.
	require.InDelta(s.T(), 0.0, g.Modularity(whole), 1e-9)
}

func (s *GraphSuite) TestModularityTwoTrianglesBridged() {
	r := strings.NewReader("0\t1\n1\t2\n0\t2\n3\t4\n4\t5\n3\t5\n2\t3\n")
	g, err := graph.LoadEdgeList(r)
	require.NoError(s.T(), err)

	left := map[int32]struct{}{0: {}, 1: {}, 2: {}}
	// A tight community separated by a single bridge edge should show
	// strongly positive modularity.
	require.Greater(s.T(), g.Modularity(left), 0.0)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
