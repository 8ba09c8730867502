package cluster

import "sort"

// ClusterIndex is a string label identifying a cluster in the hierarchy.
// Children derive their index by appending a suffix to the parent's: "a"
// and "b" for the two mincut sides, "δ" for the pruned remainder.
type ClusterIndex = string

// SideA, SideB, and Pruned are the suffixes appended to a parent's
// ClusterIndex to derive its children's.
const (
	SideA  = "a"
	SideB  = "b"
	Pruned = "δ"
)

// IntangibleCluster is a lightweight (index, node set) pair with no
// adjacency materialized — the currency clusterers and the engine's work
// stack pass around before a job realizes it against GlobalGraph.
type IntangibleCluster struct {
	Index ClusterIndex
	Nodes map[int32]struct{}
}

// NewIntangibleCluster builds an IntangibleCluster from a node slice.
func NewIntangibleCluster(index ClusterIndex, nodes []int32) IntangibleCluster {
	set := make(map[int32]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	return IntangibleCluster{Index: index, Nodes: set}
}

// Clusterer is the pure reclustering capability the engine depends on.
// It is declared here, alongside ClusterView and IntangibleCluster,
// rather than in package clusterer, so that both package clusterer
// (concrete Leiden/IKC/MCL/Infomap implementations) and package
// requirement (which evaluates the "k" grammar term against an IKC
// clusterer) can depend on package cluster without a cycle between them.
type Clusterer interface {
	// FromExistingClustering loads the initial clustering referenced by
	// path, dropping clusters of size <= 1.
	FromExistingClustering(path string) ([]IntangibleCluster, error)

	// ClusterWithoutSingletons reclusters v, dropping singleton results.
	ClusterWithoutSingletons(v *ClusterView) ([]IntangibleCluster, error)

	// IsIKC reports whether this clusterer is IKC. Both the "k" grammar
	// term and the positive-modularity acceptance guard key off this.
	IsIKC() bool

	// K returns IKC's k parameter. Meaningful only when IsIKC() is true.
	K() int

	// RequiresPositiveModularity reports whether the engine's accept
	// branch must additionally check G.Modularity(cluster) > 0 before
	// keeping a cluster; true only for IKC.
	RequiresPositiveModularity() bool
}

// N returns the number of nodes in the cluster.
func (c IntangibleCluster) N() int { return len(c.Nodes) }

// SortedNodes returns the cluster's node ids in ascending order. Used
// wherever a deterministic iteration order is required (realize, I/O).
func (c IntangibleCluster) SortedNodes() []int32 {
	nodes := make([]int32, 0, len(c.Nodes))
	for n := range c.Nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}
