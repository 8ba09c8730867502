package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/minhyukpark/cm/engine"
	"github.com/minhyukpark/cm/hierarchy"
)

// writeLabels writes the "node_id cluster_index\n" labels file. Nodes
// are written in ascending id order for a stable diff across runs over
// the same input.
func writeLabels(path string, labels map[int32]string) error {
	f, err := os.Create(path)
	if err != nil {
		return &engine.InputError{What: "output labels path", Err: err}
	}
	defer f.Close()

	ids := make([]int32, 0, len(labels))
	for id := range labels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	w := bufio.NewWriter(f)
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%d %s\n", id, labels[id]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// writeTree writes tree's JSON serialization beside the labels file.
func writeTree(path string, tree *hierarchy.Tree) error {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
