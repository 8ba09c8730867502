package clusterer

import (
	"strconv"

	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/runctx"
)

// MCL wraps the Markov Clustering binary. Inflation controls cluster
// granularity; there is no modularity guard or k-term involvement for
// this variant.
type MCL struct {
	Inflation float64
	rc        *runctx.RunContext
}

// NewMCL constructs an MCL clusterer bound to rc for subprocess
// invocation.
func NewMCL(rc *runctx.RunContext, inflation float64) *MCL {
	return &MCL{Inflation: inflation, rc: rc}
}

var _ cluster.Clusterer = (*MCL)(nil)

func (m *MCL) IsIKC() bool                     { return false }
func (m *MCL) K() int                          { return 0 }
func (m *MCL) RequiresPositiveModularity() bool { return false }

func (m *MCL) FromExistingClustering(path string) ([]cluster.IntangibleCluster, error) {
	return fromExistingClustering(path)
}

func (m *MCL) ClusterWithoutSingletons(v *cluster.ClusterView) ([]cluster.IntangibleCluster, error) {
	return invoke(m.rc, v, "mcl", func(edgelistPath, outputPath string) []string {
		return []string{edgelistPath, "-I", strconv.FormatFloat(m.Inflation, 'g', -1, 64), "-o", outputPath}
	})
}
