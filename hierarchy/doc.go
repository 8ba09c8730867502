// Package hierarchy implements the append-only decision tree the engine
// records every split, prune, and acceptance into.
//
// Nodes are arena-allocated: Tree holds a single []node slice addressed by
// integer index, each node carrying an optional parent index and a slice
// of children indices, rather than pointer-linked nodes that would own
// each other cyclically. This mirrors the
// lvlath core package's preference for slice-backed, index-addressed
// storage over pointer graphs wherever the shape is a simple tree/DAG.
package hierarchy
