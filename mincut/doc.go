// Package mincut computes the global minimum edge cut of an undirected,
// unweighted, simple graph given in compact-id adjacency form.
//
// Algorithm: fix a source s = 0. For every other compact id t = 1..n-1,
// compute the s-t max-flow (edge connectivity between s and t) via a
// Dinic-style level-graph + blocking-flow search, treating every
// undirected edge as two unit-capacity directed arcs. By the Gomory-Hu
// corollary for undirected graphs, the global mincut equals the minimum
// of these n-1 max-flow values, and the minimizing t's final residual
// graph yields a valid cut: the set reachable from s is one side, the
// rest the other.
//
// The max-flow step uses integer arc indices and unit capacities rather
// than string-keyed float64 capacity maps, which is what makes repeating
// it n-1 times over graphs with millions of nodes tractable.
//
// Determinism: ties are broken by smallest t, and adjacency is consumed in
// the CompactGraph's own (sorted) order, so two calls against the same
// compact-id assignment always return the same cut.
package mincut
