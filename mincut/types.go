package mincut

// CompactGraph is the minimal view FindGlobalMincut needs: a dense
// [0, N) compact-id adjacency, consumed in whatever order the caller's
// Neighbors returns (ClusterView guarantees sorted order, which is what
// makes the result deterministic).
type CompactGraph interface {
	N() int
	Neighbors(u int32) []int32
}

// Result is a global minimum edge cut: Light and Heavy partition the
// graph's compact ids, Light being the smaller (or equal) side, and
// CutSize the number of edges crossing between them.
//
// When the graph is disconnected, CutSize is 0 and the two sides are the
// connected component of compact id 0 and everything else; Light is the
// smaller of the two, so it may span several components.
type Result struct {
	Light   []int32
	Heavy   []int32
	CutSize int
}
