package hierarchy

// noParent marks the root node, which has no parent index.
const noParent = -1

// node is one arena slot. CutSize and ValidityThreshold are pointers so
// that "unset" (a node never cut or evaluated) round-trips distinctly
// from "set to zero" through JSON: these fields are set only on the node
// whose cluster was cut or accepted.
type node struct {
	label             string
	graphIndex        string
	numNodes          int
	cutSize           *int
	validityThreshold *float64
	extant            bool
	parent            int
	children          []int
}

// Tree is an append-only, arena-indexed hierarchy of cluster decisions.
// The zero Tree is not usable; construct with New.
type Tree struct {
	nodes []node
}

// NodeIndex addresses one node within a Tree.
type NodeIndex int

// New creates a Tree with a root node labeled "" and graphIndex
// graphIndex, representing the whole host graph.
func New(graphIndex string, numNodes int) (*Tree, NodeIndex) {
	t := &Tree{nodes: []node{{
		label:      "",
		graphIndex: graphIndex,
		numNodes:   numNodes,
		extant:     false,
		parent:     noParent,
	}}}
	return t, 0
}

// AddChild appends a new node as a child of parent and returns its index.
func (t *Tree) AddChild(parent NodeIndex, label, graphIndex string, numNodes int) NodeIndex {
	idx := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node{
		label:      label,
		graphIndex: graphIndex,
		numNodes:   numNodes,
		parent:     int(parent),
	})
	t.nodes[parent].children = append(t.nodes[parent].children, int(idx))
	return idx
}

// SetCutSize records the cut size of the cut or accept decision made at idx.
func (t *Tree) SetCutSize(idx NodeIndex, cutSize int) {
	t.nodes[idx].cutSize = &cutSize
}

// SetValidityThreshold records the validity threshold evaluated at idx.
func (t *Tree) SetValidityThreshold(idx NodeIndex, thr float64) {
	t.nodes[idx].validityThreshold = &thr
}

// SetExtant marks idx as a terminal accepted cluster (or clears the mark
// for a rejected IKC candidate).
func (t *Tree) SetExtant(idx NodeIndex, extant bool) {
	t.nodes[idx].extant = extant
}

// GraphIndex returns the ClusterIndex label stored at idx.
func (t *Tree) GraphIndex(idx NodeIndex) string {
	return t.nodes[idx].graphIndex
}

// Len returns the number of nodes in the arena, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}
