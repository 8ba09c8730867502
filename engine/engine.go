package engine

import (
	"log/slog"

	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/graph"
	"github.com/minhyukpark/cm/hierarchy"
	"github.com/minhyukpark/cm/runctx"
)

// Run executes the engine's main loop to completion over g starting from
// initial, using c to recluster split sides and req to evaluate each
// job's validity threshold. Returns the accepted output
// clusters, the terminal node-to-cluster-index label map, and the
// decision hierarchy.
func Run(
	g *graph.Graph,
	initial []cluster.IntangibleCluster,
	c cluster.Clusterer,
	req cluster.Requirement,
	rc *runctx.RunContext,
) ([]cluster.IntangibleCluster, map[int32]string, *hierarchy.Tree, error) {
	d := &driver{
		global:    g,
		clusterer: c,
		req:       req,
	}
	if !rc.Quiet {
		d.onDecision = slogDecisionHook(rc.Logger)
	}

	d.init(initial)
	if err := d.loop(); err != nil {
		return nil, nil, nil, err
	}
	return d.ans, d.labels, d.tree, nil
}

// slogDecisionHook adapts DecisionEvents to structured log lines, one
// per prune, split, accept, or reject, keeping the driver itself free of
// any logging import.
func slogDecisionHook(logger *slog.Logger) DecisionHook {
	return func(ev DecisionEvent) {
		switch ev.Kind {
		case "prune":
			logger.Info("pruned cluster",
				slog.String("cluster_index", ev.ClusterIndex),
				slog.Int("n", ev.N),
				slog.Int("num_pruned", ev.NumPruned),
			)
		case "split":
			logger.Info("split cluster",
				slog.String("cluster_index", ev.ClusterIndex),
				slog.Int("n", ev.N),
				slog.Int("cut_size", ev.CutSize),
				slog.Float64("threshold", ev.Threshold),
				slog.Any("children", ev.Children),
			)
		case "accept":
			logger.Info("accepted cluster",
				slog.String("cluster_index", ev.ClusterIndex),
				slog.Int("n", ev.N),
				slog.Float64("threshold", ev.Threshold),
			)
		case "reject":
			logger.Info("rejected cluster (non-positive modularity under IKC)",
				slog.String("cluster_index", ev.ClusterIndex),
				slog.Int("n", ev.N),
				slog.Float64("threshold", ev.Threshold),
			)
		}
	}
}
