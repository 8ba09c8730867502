package hierarchy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/minhyukpark/cm/hierarchy"
)

type HierarchySuite struct {
	suite.Suite
}

func (s *HierarchySuite) TestNewCreatesSingleRootNode() {
	tree, root := hierarchy.New("", 10)
	require.Equal(s.T(), "", tree.GraphIndex(root))
	require.Equal(s.T(), 1, tree.Len())
}

func (s *HierarchySuite) TestAddChildLinksParentAndChild() {
	tree, root := hierarchy.New("", 10)
	child := tree.AddChild(root, "0", "0", 10)
	require.Equal(s.T(), "0", tree.GraphIndex(child))
	require.Equal(s.T(), 2, tree.Len())
}

func (s *HierarchySuite) TestJSONRoundTripsSplitShape() {
	tree, root := hierarchy.New("", 6)
	initial := tree.AddChild(root, "0", "0", 6)
	tree.SetCutSize(initial, 1)
	tree.SetValidityThreshold(initial, 1.0)

	a := tree.AddChild(initial, "a", "0a", 3)
	b := tree.AddChild(initial, "b", "0b", 3)
	tree.SetCutSize(a, 2)
	tree.SetExtant(a, true)
	tree.SetCutSize(b, 2)
	tree.SetExtant(b, true)

	data, err := json.Marshal(tree)
	require.NoError(s.T(), err)

	var decoded map[string]any
	require.NoError(s.T(), json.Unmarshal(data, &decoded))
	require.Equal(s.T(), "", decoded["label"])
	require.Equal(s.T(), float64(6), decoded["num_nodes"])

	children := decoded["children"].([]any)
	require.Len(s.T(), children, 1)
	initialJSON := children[0].(map[string]any)
	require.Equal(s.T(), "0", initialJSON["graph_index"])
	require.Equal(s.T(), float64(1), initialJSON["cut_size"])
	require.False(s.T(), initialJSON["extant"].(bool))

	grandchildren := initialJSON["children"].([]any)
	require.Len(s.T(), grandchildren, 2)
	for _, gc := range grandchildren {
		node := gc.(map[string]any)
		require.True(s.T(), node["extant"].(bool))
		require.Equal(s.T(), float64(2), node["cut_size"])
	}
}

func (s *HierarchySuite) TestUnsetFieldsSerializeAsNull() {
	tree, root := hierarchy.New("", 1)
	data, err := json.Marshal(tree)
	require.NoError(s.T(), err)

	var decoded map[string]any
	require.NoError(s.T(), json.Unmarshal(data, &decoded))
	require.Nil(s.T(), decoded["cut_size"])
	require.Nil(s.T(), decoded["validity_threshold"])
	_ = root
}

func TestHierarchySuite(t *testing.T) {
	suite.Run(t, new(HierarchySuite))
}
