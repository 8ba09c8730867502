// Package graph provides GlobalGraph: an immutable, adjacency-list-backed
// undirected simple graph over a dense integer node-id range [0, N).
//
// Unlike a general-purpose graph type, GlobalGraph never changes shape after
// construction: it is built once from an edgelist (or programmatically via
// Builder) and frozen, so concurrent readers need no locking. Everything
// that mutates — pruning, splitting, reclustering — happens one level up,
// on realized cluster subgraphs (package cluster), never on the host graph.
//
// Node ids are int32. A graph with more than 2^31-1 nodes is out of scope.
package graph
