package mincut

// maxflow computes the maximum flow from source to sink over the unit-
// capacity arc arrays (adjTo/revIndex describe topology, cap holds the
// mutable residual capacities, one slot per (node, neighbor-index) arc).
// It follows Dinic's classic three-part structure: BFS level assignment,
// level-graph adjacency build, iterator-indexed DFS blocking flow — here
// specialized to integer arc indices instead of string-keyed capacity
// maps.
func maxflow(adjTo, revIndex, cap [][]int32, source, sink int32) int {
	n := len(adjTo)
	total := 0
	for {
		level := computeLevels(adjTo, cap, source, n)
		if level[sink] < 0 {
			break
		}
		next := buildLevelAdjacency(adjTo, cap, level)
		iter := make([]int, n)
		for {
			pushed := blockingFlowPush(adjTo, revIndex, cap, next, iter, source, sink, maxInt32)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}
	return total
}

const maxInt32 = int(^uint32(0) >> 1)

func computeLevels(adjTo, cap [][]int32, source int32, n int) []int {
	level := make([]int, n)
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int32{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for j, v := range adjTo[u] {
			if cap[u][j] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level
}

// levelArc is one arc of the level graph: the position j within adjTo[u]
// (so cap[u][j] and revIndex[u][j] remain addressable during the DFS).
type levelArc struct {
	to  int32
	pos int32
}

func buildLevelAdjacency(adjTo, cap [][]int32, level []int) [][]levelArc {
	next := make([][]levelArc, len(adjTo))
	for u, nbrs := range adjTo {
		for j, v := range nbrs {
			if cap[u][j] > 0 && level[v] == level[u]+1 {
				next[u] = append(next[u], levelArc{to: v, pos: int32(j)})
			}
		}
	}
	return next
}

func blockingFlowPush(
	adjTo, revIndex, cap [][]int32,
	next [][]levelArc,
	iter []int,
	u, sink int32,
	available int,
) int {
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i + 1
		arc := next[u][i]
		capUV := int(cap[u][arc.pos])
		if capUV <= 0 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed := blockingFlowPush(adjTo, revIndex, cap, next, iter, arc.to, sink, send)
		if pushed > 0 {
			cap[u][arc.pos] -= int32(pushed)
			cap[arc.to][revIndex[u][arc.pos]] += int32(pushed)
			return pushed
		}
	}
	return 0
}
