package clusterer

import (
	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/runctx"
)

// Infomap wraps the Infomap binary. It takes no tunable parameters at
// this level; Infomap's own per-line third column (module-tree depth)
// is ignored the same way readClusterFile ignores trailing columns for
// every variant.
type Infomap struct {
	rc *runctx.RunContext
}

// NewInfomap constructs an Infomap clusterer bound to rc for subprocess
// invocation.
func NewInfomap(rc *runctx.RunContext) *Infomap {
	return &Infomap{rc: rc}
}

var _ cluster.Clusterer = (*Infomap)(nil)

func (i *Infomap) IsIKC() bool                     { return false }
func (i *Infomap) K() int                          { return 0 }
func (i *Infomap) RequiresPositiveModularity() bool { return false }

func (i *Infomap) FromExistingClustering(path string) ([]cluster.IntangibleCluster, error) {
	return fromExistingClustering(path)
}

func (i *Infomap) ClusterWithoutSingletons(v *cluster.ClusterView) ([]cluster.IntangibleCluster, error) {
	return invoke(i.rc, v, "infomap", func(edgelistPath, outputPath string) []string {
		return []string{edgelistPath, "-o", outputPath}
	})
}
