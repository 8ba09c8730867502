// Package engine implements the recursive cut-validate-split-recluster
// driver: it pulls cluster jobs from a work stack,
// realizes each against a graph.Graph, prunes low-degree nodes, computes
// a global mincut, and either splits the cluster along that cut (pushing
// the reclustered children back onto the stack) or accepts it as a
// terminal output cluster.
//
// The driver is an explicit LIFO work stack rather than recursion,
// structured as an init/loop/step method set over a small mutable
// struct, with an optional decision hook fired on every prune, split,
// accept, and reject for observability without coupling the driver to
// any particular logging library.
package engine
