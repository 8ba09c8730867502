package graph

import "sort"

// edgeSet is a helper used only during construction to detect duplicates
// and self-loops before the adjacency is frozen.
type edgeSet map[[2]int32]struct{}

func normalizedPair(u, v int32) [2]int32 {
	if u > v {
		u, v = v, u
	}
	return [2]int32{u, v}
}

// Builder incrementally assembles a Graph from discovered edges, then
// freezes it. Node ids are inferred from the edges themselves: the final
// node count is one more than the maximum id seen, matching the edgelist
// format's "isolated nodes may be absent" rule — an id below the maximum
// that never appears in an edge still exists as an isolated node, while
// ids above the maximum do not exist in the resulting Graph.
type Builder struct {
	seen  edgeSet
	edges [][2]int32
	maxID int32
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(edgeSet), maxID: -1}
}

// AddEdge records an undirected edge u-v. Returns ErrSelfLoop if u == v,
// ErrNegativeID if either id is negative, or ErrDuplicateEdge if the same
// unordered pair was already added.
func (b *Builder) AddEdge(u, v int32) error {
	if u < 0 || v < 0 {
		return ErrNegativeID
	}
	if u == v {
		return ErrSelfLoop
	}
	key := normalizedPair(u, v)
	if _, dup := b.seen[key]; dup {
		return ErrDuplicateEdge
	}
	b.seen[key] = struct{}{}
	b.edges = append(b.edges, key)
	if u > b.maxID {
		b.maxID = u
	}
	if v > b.maxID {
		b.maxID = v
	}
	return nil
}

// Build freezes the accumulated edges into a Graph. An empty Builder (no
// edges added) yields a zero-node Graph.
func (b *Builder) Build() *Graph {
	n := int(b.maxID) + 1
	if n < 0 {
		n = 0
	}
	degree := make([]int, n)
	for _, e := range b.edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	adj := make([][]int32, n)
	for i, d := range degree {
		adj[i] = make([]int32, 0, d)
	}
	for _, e := range b.edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for i := range adj {
		sort.Slice(adj[i], func(a, c int) bool { return adj[i][a] < adj[i][c] })
	}
	return &Graph{adj: adj, numEdges: len(b.edges)}
}
