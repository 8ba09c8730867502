// Package clusterer implements cluster.Clusterer against four external
// clustering binaries, each invoked as a synchronous subprocess: Leiden,
// IKC, MCL, and Infomap. None of the clustering algorithms themselves
// are reimplemented here; each variant shells out to its own reference
// binary and reads back its output.
//
// All four share one subprocess contract (subprocess.go): write the
// view's induced edgelist in compact-id space to a uuid-named temp file,
// invoke the configured binary with RunContext's working directory,
// capture stdout/stderr to files beside it, read back a "node_id
// cluster_id" clustering file, and remap cluster-local ids to original
// graph ids before dropping singleton results.
package clusterer
