package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/minhyukpark/cm/mincut"
)

// adjGraph is a plain compact-id adjacency list implementing
// mincut.CompactGraph, used to exercise FindGlobalMincut directly
// without routing through package cluster.
type adjGraph [][]int32

func (g adjGraph) N() int                     { return len(g) }
func (g adjGraph) Neighbors(u int32) []int32 { return g[u] }

type MincutSuite struct {
	suite.Suite
}

func (s *MincutSuite) TestTriangleMincutIsTwo() {
	g := adjGraph{
		{1, 2},
		{0, 2},
		{0, 1},
	}
	res := mincut.FindGlobalMincut(g)
	require.Equal(s.T(), 2, res.CutSize)
	require.Len(s.T(), res.Light, 1)
	require.Len(s.T(), res.Heavy, 2)
}

func (s *MincutSuite) TestBridgedTrianglesMincutIsOne() {
	// Two triangles {0,1,2} and {3,4,5} joined by the bridge 2-3.
	g := adjGraph{
		{1, 2},
		{0, 2},
		{0, 1, 3},
		{2, 4, 5},
		{3, 5},
		{3, 4},
	}
	res := mincut.FindGlobalMincut(g)
	require.Equal(s.T(), 1, res.CutSize)
	require.Len(s.T(), res.Light, 3)
	require.Len(s.T(), res.Heavy, 3)
}

func (s *MincutSuite) TestStarMincutIsOne() {
	// Center 0, leaves 1..5.
	g := adjGraph{
		{1, 2, 3, 4, 5},
		{0}, {0}, {0}, {0}, {0},
	}
	res := mincut.FindGlobalMincut(g)
	require.Equal(s.T(), 1, res.CutSize)
	require.Len(s.T(), res.Light, 1)
}

func (s *MincutSuite) TestDisconnectedGraphHasZeroCut() {
	g := adjGraph{
		{1}, {0},
		{3}, {2},
	}
	res := mincut.FindGlobalMincut(g)
	require.Equal(s.T(), 0, res.CutSize)
	require.Len(s.T(), res.Light, 2)
	require.Len(s.T(), res.Heavy, 2)
}

func (s *MincutSuite) TestSingleNodeHasNoCutAndNoPanic() {
	g := adjGraph{{}}
	res := mincut.FindGlobalMincut(g)
	require.Equal(s.T(), 0, res.CutSize)
	require.Equal(s.T(), []int32{0}, res.Light)
}

func TestMincutSuite(t *testing.T) {
	suite.Run(t, new(MincutSuite))
}
