package clusterer

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/minhyukpark/cm/cluster"
)

// writeCompactEdgelist writes v's induced edges in compact-id space to
// path, one "u\tv" per line with u < v, matching the tab-separated
// edgelist format the engine itself reads so external
// clusterers see the same wire shape CM's own loader produces.
func writeCompactEdgelist(v *cluster.ClusterView, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("clusterer: creating edgelist %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for c := 0; c < v.N(); c++ {
		for _, nbr := range v.Neighbors(int32(c)) {
			if nbr > int32(c) {
				if _, err := fmt.Fprintf(w, "%d\t%d\n", c, nbr); err != nil {
					return err
				}
			}
		}
	}
	return w.Flush()
}

// readClusterFile reads a whitespace-separated "id cluster_id [...]"
// file — the format every named clusterer's own output shares — grouping
// the first column by the second. Trailing columns (IKC's per-line k and
// modularity, infomap's internal flags) are ignored.
func readClusterFile(path string) (map[string][]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("clusterer: reading clustering %s: %w", path, err)
	}
	defer f.Close()

	groups := make(map[string][]int32)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("clusterer: %s:%d: expected at least 2 fields, got %d", path, lineNo, len(fields))
		}
		id, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("clusterer: %s:%d: bad node id %q: %w", path, lineNo, fields[0], err)
		}
		cid := fields[1]
		groups[cid] = append(groups[cid], int32(id))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("clusterer: reading %s: %w", path, err)
	}
	return groups, nil
}

// sortedClusterIDs returns groups's keys in a deterministic order, so
// repeated runs over the same clustering file produce identically
// indexed IntangibleClusters.
func sortedClusterIDs(groups map[string][]int32) []string {
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
