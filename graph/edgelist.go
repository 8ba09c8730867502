package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadEdgeList parses a tab-separated edgelist: one "u\tv" pair per
// line, 0-based integer ids, no self-loops, no duplicate edges, blank
// lines ignored. It returns the frozen Graph or a wrapped parse error
// identifying the offending line.
//
// Parsing is line-oriented bufio.Scanner plus strconv rather than a
// streaming decoder, matching how this codebase's other line-based
// loaders read whitespace-delimited integer data.
func LoadEdgeList(r io.Reader) (*Graph, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("graph: line %d: expected \"u<TAB>v\", got %q", line, text)
		}
		u, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("graph: line %d: bad node id %q: %w", line, fields[0], err)
		}
		v, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("graph: line %d: bad node id %q: %w", line, fields[1], err)
		}
		if err := b.AddEdge(int32(u), int32(v)); err != nil {
			return nil, fmt.Errorf("graph: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graph: reading edgelist: %w", err)
	}
	return b.Build(), nil
}
