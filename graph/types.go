package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrSelfLoop indicates the edgelist contained u == v, which Graph
	// never permits.
	ErrSelfLoop = errors.New("graph: self-loop edges are not permitted")

	// ErrDuplicateEdge indicates the same unordered pair appeared twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrNegativeID indicates a node id below zero was encountered.
	ErrNegativeID = errors.New("graph: node ids must be non-negative")

	// ErrNodeOutOfRange indicates a query referenced a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")
)

// Graph is an immutable undirected simple graph over node ids [0, N).
//
// Its adjacency is a frozen, sorted [][]int32: adj[u] lists u's neighbors in
// ascending order. Sorted adjacency is what lets ClusterView and the mincut
// package build deterministic compact-id remaps and level graphs without an
// explicit sort at every use site.
type Graph struct {
	adj      [][]int32
	numEdges int
}

// N returns the number of nodes, i.e. the size of the dense id range [0, N).
func (g *Graph) N() int { return len(g.adj) }

// NumEdges returns the total number of undirected edges.
func (g *Graph) NumEdges() int { return g.numEdges }

// Degree returns the degree of node u.
//
// Panics (via slice index) if u is out of range; callers that accept
// externally-sourced ids should check 0 <= u < g.N() first, as Graph
// itself performs no bounds-checking: it is a pure, immutable query
// surface.
func (g *Graph) Degree(u int32) int { return len(g.adj[u]) }

// Neighbors returns node u's neighbors, sorted ascending. The returned
// slice is the graph's internal storage and must not be mutated.
func (g *Graph) Neighbors(u int32) []int32 { return g.adj[u] }

// Nodes returns all node ids in [0, N), in ascending order.
func (g *Graph) Nodes() []int32 {
	nodes := make([]int32, g.N())
	for i := range nodes {
		nodes[i] = int32(i)
	}
	return nodes
}

// HasEdge reports whether u and v are adjacent. O(log deg(u)).
func (g *Graph) HasEdge(u, v int32) bool {
	nbrs := g.adj[u]
	lo, hi := 0, len(nbrs)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case nbrs[mid] == v:
			return true
		case nbrs[mid] < v:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}
