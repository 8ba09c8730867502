package clusterer

import (
	"strconv"

	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/runctx"
)

// IKC wraps the Iterative k-Core Clustering binary. Its k both
// parameterizes the subprocess call and feeds the MincutRequirement
// grammar's "k" term, and it is the only variant whose acceptance
// additionally requires positive Newman modularity.
type IKC struct {
	K_ int
	rc *runctx.RunContext
}

// NewIKC constructs an IKC clusterer bound to rc for subprocess
// invocation.
func NewIKC(rc *runctx.RunContext, k int) *IKC {
	return &IKC{K_: k, rc: rc}
}

var _ cluster.Clusterer = (*IKC)(nil)

func (c *IKC) IsIKC() bool                     { return true }
func (c *IKC) K() int                          { return c.K_ }
func (c *IKC) RequiresPositiveModularity() bool { return true }

func (c *IKC) FromExistingClustering(path string) ([]cluster.IntangibleCluster, error) {
	return fromExistingClustering(path)
}

func (c *IKC) ClusterWithoutSingletons(v *cluster.ClusterView) ([]cluster.IntangibleCluster, error) {
	return invoke(c.rc, v, "ikc", func(edgelistPath, outputPath string) []string {
		return []string{"-e", edgelistPath, "-o", outputPath, "-k", strconv.Itoa(c.K_)}
	})
}
