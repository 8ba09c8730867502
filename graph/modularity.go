package graph

// Modularity returns the Newman modularity of the single-community
// bipartition {nodes, V∖nodes} over g:
//
//	Q = Σ_{c∈{S,V∖S}} [ L_c/m − (k_c / 2m)² ]
//
// where L_c is the number of induced edges inside community c, k_c is the
// sum of degrees of nodes in c, and m is the total number of edges in g.
// Used only by the engine's IKC acceptance guard.
//
// An edgeless graph has modularity 0 by convention (no pair of nodes can
// be "within" a non-existent edge).
func (g *Graph) Modularity(nodes map[int32]struct{}) float64 {
	m := g.numEdges
	if m == 0 {
		return 0
	}
	twoM := float64(2 * m)

	var kS, lSDouble, lCross int64
	for u := range nodes {
		kS += int64(len(g.adj[u]))
		for _, v := range g.adj[u] {
			if _, in := nodes[v]; in {
				lSDouble++
			} else {
				lCross++
			}
		}
	}
	lS := lSDouble / 2 // each internal edge counted from both endpoints

	kTotal := int64(0)
	for i := range g.adj {
		kTotal += int64(len(g.adj[i]))
	}
	kRest := kTotal - kS
	lRest := int64(m) - lS - lCross

	qS := float64(lS)/float64(m) - (float64(kS)/twoM)*(float64(kS)/twoM)
	qRest := float64(lRest)/float64(m) - (float64(kRest)/twoM)*(float64(kRest)/twoM)
	return qS + qRest
}
