package clusterer

import (
	"strconv"

	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/runctx"
)

// Leiden wraps the Leiden community-detection binary. Resolution is set
// exactly when Quality == CPM: CPM mode requires a resolution, modularity
// mode forbids one (the CLI enforces this at parse time).
type Leiden struct {
	Resolution *float64
	Quality    Quality
	rc         *runctx.RunContext
}

// NewLeiden constructs a Leiden clusterer bound to rc for subprocess
// invocation.
func NewLeiden(rc *runctx.RunContext, resolution *float64, quality Quality) *Leiden {
	return &Leiden{Resolution: resolution, Quality: quality, rc: rc}
}

var _ cluster.Clusterer = (*Leiden)(nil)

func (l *Leiden) IsIKC() bool                     { return false }
func (l *Leiden) K() int                          { return 0 }
func (l *Leiden) RequiresPositiveModularity() bool { return false }

func (l *Leiden) FromExistingClustering(path string) ([]cluster.IntangibleCluster, error) {
	return fromExistingClustering(path)
}

func (l *Leiden) ClusterWithoutSingletons(v *cluster.ClusterView) ([]cluster.IntangibleCluster, error) {
	return invoke(l.rc, v, "leiden", func(edgelistPath, outputPath string) []string {
		args := []string{"-e", edgelistPath, "-o", outputPath, "-q", l.Quality.String()}
		if l.Resolution != nil {
			args = append(args, "-g", strconv.FormatFloat(*l.Resolution, 'g', -1, 64))
		}
		return args
	})
}
