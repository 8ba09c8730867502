package cluster

import (
	"sort"

	"github.com/minhyukpark/cm/graph"
	"github.com/minhyukpark/cm/mincut"
)

// ClusterView is a materialization of an IntangibleCluster against a
// graph.Graph: induced adjacency plus a bijective original-id <-> compact-id
// map. It is the realized form a job operates on for the rest of its
// lifetime (pruning, mincut, splitting).
//
// Invariants:
//   - every node is a node of the host graph;
//   - induced edges are exactly those of the host graph with both endpoints
//     inside the current node set;
//   - after any mutation (RemoveNodes), the compact-id map remains bijective
//     onto the current node set.
type ClusterView struct {
	global *graph.Graph
	index  ClusterIndex

	// nodes[c] is the original id of compact id c. pos is its inverse.
	nodes []int32
	pos   map[int32]int32

	// adj[c] lists c's neighbors in compact-id space, ascending.
	adj [][]int32
}

// Realize builds a ClusterView from g over ic's node set, assigning
// compact ids in ascending original-id order for a deterministic map.
func Realize(g *graph.Graph, ic IntangibleCluster) *ClusterView {
	sorted := ic.SortedNodes()
	pos := make(map[int32]int32, len(sorted))
	for c, orig := range sorted {
		pos[orig] = int32(c)
	}
	adj := make([][]int32, len(sorted))
	for c, orig := range sorted {
		for _, nbr := range g.Neighbors(orig) {
			if nc, in := pos[nbr]; in {
				adj[c] = append(adj[c], nc)
			}
		}
		sort.Slice(adj[c], func(i, j int) bool { return adj[c][i] < adj[c][j] })
	}
	return &ClusterView{global: g, index: ic.Index, nodes: sorted, pos: pos, adj: adj}
}

// Index returns the cluster's current ClusterIndex.
func (v *ClusterView) Index() ClusterIndex { return v.index }

// Reindex changes the view's ClusterIndex in place, without touching its
// node set or adjacency. Used by the engine to rename a view to its "δ"
// suffix after pruning removes at least one node.
func (v *ClusterView) Reindex(index ClusterIndex) { v.index = index }

// N returns the current node count.
func (v *ClusterView) N() int { return len(v.nodes) }

// M returns the current induced edge count.
func (v *ClusterView) M() int {
	m := 0
	for _, nbrs := range v.adj {
		m += len(nbrs)
	}
	return m / 2
}

// Neighbors returns compact id c's neighbors in compact-id space, ascending.
// Implements mincut.CompactGraph.
func (v *ClusterView) Neighbors(c int32) []int32 { return v.adj[c] }

// MCD returns the minimum induced degree over the current node set, or 0
// if the view is empty.
func (v *ClusterView) MCD() int {
	if len(v.adj) == 0 {
		return 0
	}
	min := len(v.adj[0])
	for _, nbrs := range v.adj[1:] {
		if len(nbrs) < min {
			min = len(nbrs)
		}
	}
	return min
}

// OriginalID returns the original graph node id for compact id c.
func (v *ClusterView) OriginalID(c int32) int32 { return v.nodes[c] }

// ToIntangible returns the view's current (index, node set) as a pure
// IntangibleCluster, with no adjacency attached.
func (v *ClusterView) ToIntangible() IntangibleCluster {
	return NewIntangibleCluster(v.index, v.nodes)
}

// RemoveNodes removes every original id in us (and their incident induced
// edges) in one rebuild, re-indexing compact ids from scratch. This is
// what the Pruner calls once per fixpoint round, removing every node
// below the degree threshold all at once.
func (v *ClusterView) RemoveNodes(us []int32) {
	if len(us) == 0 {
		return
	}
	drop := make(map[int32]struct{}, len(us))
	for _, u := range us {
		drop[u] = struct{}{}
	}
	keep := make([]int32, 0, len(v.nodes)-len(us))
	for _, orig := range v.nodes {
		if _, gone := drop[orig]; !gone {
			keep = append(keep, orig)
		}
	}
	ic := NewIntangibleCluster(v.index, keep)
	*v = *Realize(v.global, ic)
}

// MincutResult mirrors mincut.Result but in terms of original node ids,
// the currency ClusterView's callers (Pruner, Engine) operate in.
type MincutResult struct {
	Light, Heavy map[int32]struct{}
	CutSize      int
}

// FindMincut returns a global minimum edge cut of the view's current
// induced graph. Deterministic given the compact-id order fixed by
// Realize.
func (v *ClusterView) FindMincut() MincutResult {
	raw := mincut.FindGlobalMincut(v)
	return MincutResult{
		Light:   v.toOriginal(raw.Light),
		Heavy:   v.toOriginal(raw.Heavy),
		CutSize: raw.CutSize,
	}
}

func (v *ClusterView) toOriginal(compact []int32) map[int32]struct{} {
	out := make(map[int32]struct{}, len(compact))
	for _, c := range compact {
		out[v.nodes[c]] = struct{}{}
	}
	return out
}

// CutByMincut returns two ClusterViews realized independently from the
// host graph over result's light and heavy partitions, with indices
// index+"a" and index+"b". Each side is re-induced from the host graph,
// not sliced from v's adjacency, so that cross-edges the parent's
// induced subgraph held — but that the cut did not sever — are
// preserved inside each side.
func (v *ClusterView) CutByMincut(result MincutResult) (a, b *ClusterView) {
	lightIC := NewIntangibleCluster(v.index+SideA, setToSlice(result.Light))
	heavyIC := NewIntangibleCluster(v.index+SideB, setToSlice(result.Heavy))
	return Realize(v.global, lightIC), Realize(v.global, heavyIC)
}

func setToSlice(s map[int32]struct{}) []int32 {
	out := make([]int32, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	return out
}
