// Package cluster implements IntangibleCluster and ClusterView: the
// lightweight node-set handle produced by clusterers and the job realize
// step's materialized induced subgraph over compact ids, plus the Pruner
// that strips below-threshold-degree nodes from a ClusterView.
//
// ClusterView.adjacency is built by iterating the kept node set and
// keeping only edges whose other endpoint is also kept. The addition
// here is the compact-id remap: the id map stays bijective onto the
// current node set across mutation.
package cluster
