package hierarchy

import "encoding/json"

// jsonNode is the serialized shape of one tree node:
// {label, graph_index, num_nodes, cut_size, validity_threshold, extant,
// children[]}. Built by walking the arena recursively from the root;
// encoding/json handles the recursive marshal once the tree is shaped
// this way, so no third-party JSON library earns its keep here (see
// DESIGN.md).
type jsonNode struct {
	Label             string      `json:"label"`
	GraphIndex        string      `json:"graph_index"`
	NumNodes          int         `json:"num_nodes"`
	CutSize           *int        `json:"cut_size"`
	ValidityThreshold *float64    `json:"validity_threshold"`
	Extant            bool        `json:"extant"`
	Children          []*jsonNode `json:"children"`
}

// MarshalJSON serializes the tree from its root as nested JSON objects.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toJSON(0))
}

func (t *Tree) toJSON(idx NodeIndex) *jsonNode {
	n := &t.nodes[idx]
	out := &jsonNode{
		Label:             n.label,
		GraphIndex:        n.graphIndex,
		NumNodes:          n.numNodes,
		CutSize:           n.cutSize,
		ValidityThreshold: n.validityThreshold,
		Extant:            n.extant,
		Children:          make([]*jsonNode, 0, len(n.children)),
	}
	for _, c := range n.children {
		out.Children = append(out.Children, t.toJSON(NodeIndex(c)))
	}
	return out
}
