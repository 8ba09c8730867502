package requirement_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/graph"
	"github.com/minhyukpark/cm/requirement"
)

// fakeIKC and fakeNonIKC stand in for cluster.Clusterer to exercise the
// "k" term's IKC gating without depending on package clusterer.
type fakeIKC struct{ k int }

func (f fakeIKC) FromExistingClustering(string) ([]cluster.IntangibleCluster, error) { return nil, nil }
func (f fakeIKC) ClusterWithoutSingletons(*cluster.ClusterView) ([]cluster.IntangibleCluster, error) {
	return nil, nil
}
func (f fakeIKC) IsIKC() bool                      { return true }
func (f fakeIKC) K() int                           { return f.k }
func (f fakeIKC) RequiresPositiveModularity() bool { return true }

type fakeNonIKC struct{}

func (fakeNonIKC) FromExistingClustering(string) ([]cluster.IntangibleCluster, error) { return nil, nil }
func (fakeNonIKC) ClusterWithoutSingletons(*cluster.ClusterView) ([]cluster.IntangibleCluster, error) {
	return nil, nil
}
func (fakeNonIKC) IsIKC() bool                      { return false }
func (fakeNonIKC) K() int                           { return 999 }
func (fakeNonIKC) RequiresPositiveModularity() bool { return false }

type RequirementSuite struct {
	suite.Suite
}

func (s *RequirementSuite) TestEmptyStringIsAParseError() {
	_, err := requirement.Parse("")
	require.ErrorIs(s.T(), err, requirement.ErrEmptyExpression)
}

func (s *RequirementSuite) TestConstantExpression() {
	r, err := requirement.Parse("2")
	require.NoError(s.T(), err)

	g := graphOfTriangle(s.T())
	ic := cluster.NewIntangibleCluster("x", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	require.InDelta(s.T(), 2.0, r.ValidityThreshold(fakeNonIKC{}, v), 1e-9)
}

func (s *RequirementSuite) TestMcdTerm() {
	r, err := requirement.Parse("1mcd")
	require.NoError(s.T(), err)

	g := graphOfTriangle(s.T())
	ic := cluster.NewIntangibleCluster("x", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	require.InDelta(s.T(), float64(v.MCD()), r.ValidityThreshold(fakeNonIKC{}, v), 1e-9)
}

func (s *RequirementSuite) TestKTermOnlyAppliesUnderIKC() {
	r, err := requirement.Parse("1k")
	require.NoError(s.T(), err)

	g := graphOfTriangle(s.T())
	ic := cluster.NewIntangibleCluster("x", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	require.InDelta(s.T(), 0.0, r.ValidityThreshold(fakeNonIKC{}, v), 1e-9)
	require.InDelta(s.T(), 5.0, r.ValidityThreshold(fakeIKC{k: 5}, v), 1e-9)
}

func (s *RequirementSuite) TestSumOfTerms() {
	r, err := requirement.Parse("1 + 2log2 + 0.5mcd")
	require.NoError(s.T(), err)

	g := graphOfTriangle(s.T())
	ic := cluster.NewIntangibleCluster("x", []int32{0, 1, 2})
	v := cluster.Realize(g, ic)

	// n=3, log2(3)≈1.585; mcd=2.
	want := 1.0 + 2.0*1.5849625007211562 + 0.5*2.0
	require.InDelta(s.T(), want, r.ValidityThreshold(fakeNonIKC{}, v), 1e-9)
}

func (s *RequirementSuite) TestMalformedExpressionIsParseError() {
	_, err := requirement.Parse("mcd + 1")
	require.Error(s.T(), err)
}

func graphOfTriangle(t require.TestingT) *graph.Graph {
	b := graph.NewBuilder()
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(0, 2))
	return b.Build()
}

func TestRequirementSuite(t *testing.T) {
	suite.Run(t, new(RequirementSuite))
}
