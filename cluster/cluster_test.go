package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/graph"
)

// fakeRequirement is a constant MincutRequirement stand-in for Pruner tests.
type fakeRequirement struct{ thr float64 }

func (r fakeRequirement) ValidityThreshold(cluster.Clusterer, *cluster.ClusterView) float64 {
	return r.thr
}

// fakeClusterer is a no-op Clusterer stand-in; Prune never calls its
// clustering methods, only IsIKC/K via the Requirement, which
// fakeRequirement ignores.
type fakeClusterer struct{}

func (fakeClusterer) FromExistingClustering(string) ([]cluster.IntangibleCluster, error) {
	return nil, nil
}
func (fakeClusterer) ClusterWithoutSingletons(*cluster.ClusterView) ([]cluster.IntangibleCluster, error) {
	return nil, nil
}
func (fakeClusterer) IsIKC() bool                      { return false }
func (fakeClusterer) K() int                           { return 0 }
func (fakeClusterer) RequiresPositiveModularity() bool { return false }

func buildTriangleGraph(t require.TestingT) *graph.Graph {
	b := graph.NewBuilder()
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(0, 2))
	return b.Build()
}

type ClusterSuite struct {
	suite.Suite
}

func (s *ClusterSuite) TestRealizeInducesSubsetAdjacency() {
	b := graph.NewBuilder()
	require.NoError(s.T(), b.AddEdge(0, 1))
	require.NoError(s.T(), b.AddEdge(1, 2))
	require.NoError(s.T(), b.AddEdge(2, 3))
	g := b.Build()

	ic := cluster.NewIntangibleCluster("x", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	require.Equal(s.T(), 3, v.N())
	require.Equal(s.T(), 2, v.M()) // edge (2,3) excluded: 3 is outside the view
	require.Equal(s.T(), 1, v.MCD())
}

func (s *ClusterSuite) TestFindMincutOnTriangle() {
	g := buildTriangleGraph(s.T())
	ic := cluster.NewIntangibleCluster("root", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	res := v.FindMincut()
	require.Equal(s.T(), 2, res.CutSize)
	require.Len(s.T(), res.Light, 1)
	require.Len(s.T(), res.Heavy, 2)
}

func (s *ClusterSuite) TestCutByMincutReInducesFromGlobal() {
	// Two triangles bridged, {2,3} is the cut edge under threshold 1.
	b := graph.NewBuilder()
	for _, e := range [][2]int32{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}, {2, 3}} {
		require.NoError(s.T(), b.AddEdge(e[0], e[1]))
	}
	g := b.Build()
	ic := cluster.NewIntangibleCluster("", []int32{0, 1, 2, 3, 4, 5})
	v := cluster.Realize(g, ic)

	res := v.FindMincut()
	require.Equal(s.T(), 1, res.CutSize)

	a, b2 := v.CutByMincut(v.FindMincut())
	_ = res
	require.Equal(s.T(), 3, a.N())
	require.Equal(s.T(), 3, b2.N())
	// Each side re-induces its own triangle (mincut 2), confirming the
	// bridge edge was severed but the internal triangle edges survived
	// the re-induction from the host graph.
	require.Equal(s.T(), 2, a.FindMincut().CutSize)
	require.Equal(s.T(), 2, b2.FindMincut().CutSize)
}

func (s *ClusterSuite) TestPruneCascadeOnPath() {
	// Path of 11 nodes (length 10): 0-1-2-...-10.
	b := graph.NewBuilder()
	for i := int32(0); i < 10; i++ {
		require.NoError(s.T(), b.AddEdge(i, i+1))
	}
	g := b.Build()
	ic := cluster.NewIntangibleCluster("", g.Nodes())
	v := cluster.Realize(g, ic)

	removed := cluster.Prune(v, fakeRequirement{thr: 2}, fakeClusterer{})
	require.Positive(s.T(), removed)
	require.True(s.T(), v.N() <= 1 || float64(v.MCD()) >= 2)
}

func (s *ClusterSuite) TestPruneNoOpAboveThreshold() {
	g := buildTriangleGraph(s.T())
	ic := cluster.NewIntangibleCluster("root", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	removed := cluster.Prune(v, fakeRequirement{thr: 1}, fakeClusterer{})
	require.Equal(s.T(), 0, removed)
	require.Equal(s.T(), 3, v.N())
}

func (s *ClusterSuite) TestRemoveNodesRebuildsCompactIDs() {
	g := buildTriangleGraph(s.T())
	ic := cluster.NewIntangibleCluster("root", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	v.RemoveNodes([]int32{1})
	require.Equal(s.T(), 2, v.N())
	remaining := []int32{v.OriginalID(0), v.OriginalID(1)}
	require.ElementsMatch(s.T(), []int32{0, 2}, remaining)
}

func TestClusterSuite(t *testing.T) {
	suite.Run(t, new(ClusterSuite))
}
