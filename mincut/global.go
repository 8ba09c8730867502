package mincut

import "sort"

// FindGlobalMincut computes the global minimum edge cut of g, per the
// algorithm documented in doc.go. For g.N() <= 1 there is no meaningful
// cut, so it returns a zero-size cut with every node (if any) on the
// light side rather than running the flow computation.
func FindGlobalMincut(g CompactGraph) Result {
	n := g.N()
	if n <= 1 {
		light := []int32{}
		if n == 1 {
			light = []int32{0}
		}
		return Result{Light: light, CutSize: 0}
	}

	adjTo := make([][]int32, n)
	for u := 0; u < n; u++ {
		adjTo[u] = g.Neighbors(int32(u))
	}
	revIndex := buildReverseIndex(adjTo)

	if reached, ok := bfsReachable(adjTo, 0, nil); !ok {
		return partitionResult(reached, n, 0)
	}

	best := Result{CutSize: -1}
	for t := 1; t < n; t++ {
		cap := newUnitCapacities(adjTo)
		flowVal := maxflow(adjTo, revIndex, cap, 0, int32(t))
		if best.CutSize == -1 || flowVal < best.CutSize {
			reached, _ := bfsReachable(adjTo, 0, cap)
			res := partitionResult(reached, n, flowVal)
			best = res
		}
	}
	return best
}

// buildReverseIndex precomputes, for every arc adjTo[u][i] = v, the index j
// such that adjTo[v][j] == u. adjTo[v] is sorted (ClusterView's invariant),
// so this is a binary search per arc.
func buildReverseIndex(adjTo [][]int32) [][]int32 {
	rev := make([][]int32, len(adjTo))
	for u, nbrs := range adjTo {
		rev[u] = make([]int32, len(nbrs))
		for i, v := range nbrs {
			target := adjTo[v]
			j := sort.Search(len(target), func(k int) bool { return target[k] >= int32(u) })
			rev[u][i] = int32(j)
		}
	}
	return rev
}

func newUnitCapacities(adjTo [][]int32) [][]int32 {
	cap_ := make([][]int32, len(adjTo))
	for u, nbrs := range adjTo {
		row := make([]int32, len(nbrs))
		for i := range row {
			row[i] = 1
		}
		cap_[u] = row
	}
	return cap_
}

// bfsReachable returns the set of nodes reachable from src. If cap is nil,
// every adjacency entry is traversable (plain connectivity); otherwise only
// arcs with positive residual capacity are followed (post-maxflow
// partition extraction). ok is false when some node is unreached.
func bfsReachable(adjTo [][]int32, src int32, cap [][]int32) (reached []int32, ok bool) {
	n := len(adjTo)
	visited := make([]bool, n)
	visited[src] = true
	queue := []int32{src}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for j, v := range adjTo[u] {
			if cap != nil && cap[u][j] <= 0 {
				continue
			}
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	reached = make([]int32, 0, len(queue))
	count := 0
	for id, v := range visited {
		if v {
			reached = append(reached, int32(id))
			count++
		}
	}
	return reached, count == n
}

// partitionResult turns a reached-from-0 set into a Result, placing the
// smaller side in Light so that |light| <= |heavy| always holds.
func partitionResult(reached []int32, n int, cutSize int) Result {
	inReached := make(map[int32]struct{}, len(reached))
	for _, v := range reached {
		inReached[v] = struct{}{}
	}
	rest := make([]int32, 0, n-len(reached))
	for id := 0; id < n; id++ {
		if _, in := inReached[int32(id)]; !in {
			rest = append(rest, int32(id))
		}
	}
	if len(reached) <= len(rest) {
		return Result{Light: reached, Heavy: rest, CutSize: cutSize}
	}
	return Result{Light: rest, Heavy: reached, CutSize: cutSize}
}
