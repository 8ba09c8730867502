package cluster

// Requirement is the subset of requirement.Requirement the Pruner needs.
// Declared locally (rather than importing package requirement) so that
// package requirement can itself depend on package cluster without a
// cycle; requirement.Requirement satisfies this interface structurally.
type Requirement interface {
	ValidityThreshold(c Clusterer, v *ClusterView) float64
}

// Prune iteratively strips nodes whose induced degree is below the
// cluster's validity threshold until a fixpoint:
//
//  1. thr = r.ValidityThreshold(c, v); mcd = v.MCD().
//  2. If mcd >= thr or v.N() <= 1, stop.
//  3. Otherwise remove every node with degree < thr, all at once, and
//     recompute.
//
// Returns the total number of nodes removed (0 means v is untouched).
// Removal is monotone: a node removed in one round never reappears in a
// later round of the same call, since thresholds depend only on the
// shrinking view's own mcd and size.
func Prune(v *ClusterView, r Requirement, c Clusterer) int {
	removed := 0
	for {
		thr := r.ValidityThreshold(c, v)
		if float64(v.MCD()) >= thr || v.N() <= 1 {
			return removed
		}
		below := belowThreshold(v, thr)
		if len(below) == 0 {
			// mcd < thr but nothing strictly below thr can happen only
			// when mcd itself is ≥ thr, already handled above; guard
			// against an infinite loop on a pathological Requirement.
			return removed
		}
		v.RemoveNodes(below)
		removed += len(below)
	}
}

// belowThreshold returns every original id whose induced degree is
// strictly less than thr.
func belowThreshold(v *ClusterView, thr float64) []int32 {
	var out []int32
	for c := 0; c < v.N(); c++ {
		if float64(len(v.Neighbors(int32(c)))) < thr {
			out = append(out, v.OriginalID(int32(c)))
		}
	}
	return out
}
