package clusterer

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/runctx"
)

// invoke runs binName as a synchronous subprocess over v's induced
// edgelist and returns the non-singleton subclusters it reports, with
// compact ids remapped back to v's original graph ids. buildArgs
// receives the paths invoke chose for the input edgelist and output
// clustering file and returns the full argument list.
//
// Every temp file this invocation touches is named with a google/uuid
// suffix (edgelist, output, stdout, stderr) so that a future concurrent
// scheduler cannot collide two jobs' files in the same working
// directory.
func invoke(rc *runctx.RunContext, v *cluster.ClusterView, binName string, buildArgs func(edgelistPath, outputPath string) []string) ([]cluster.IntangibleCluster, error) {
	id := uuid.New().String()
	base := fmt.Sprintf("%s.%s", sanitizeIndex(v.Index()), id)

	edgelistPath := filepath.Join(rc.WorkDir, base+".edgelist")
	outputPath := filepath.Join(rc.WorkDir, base+".clustering")
	stdoutPath := filepath.Join(rc.WorkDir, base+".stdout")
	stderrPath := filepath.Join(rc.WorkDir, base+".stderr")

	if err := writeCompactEdgelist(v, edgelistPath); err != nil {
		return nil, err
	}

	args := buildArgs(edgelistPath, outputPath)
	binPath := rc.BinPath(binName)

	if !rc.Quiet {
		rc.Logger.Info("invoking clusterer",
			slog.String("binary", binPath),
			slog.String("cluster_index", v.Index()),
			slog.Int("n", v.N()),
		)
	}

	if err := runCommand(rc.WorkDir, binPath, args, stdoutPath, stderrPath); err != nil {
		return nil, err
	}

	groups, err := readClusterFile(outputPath)
	if err != nil {
		return nil, &Error{Binary: binPath, Args: args, StderrPath: stderrPath, Err: err}
	}

	var out []cluster.IntangibleCluster
	for _, cid := range sortedClusterIDs(groups) {
		compactIDs := groups[cid]
		if len(compactIDs) <= 1 {
			continue
		}
		original := make([]int32, len(compactIDs))
		for i, c := range compactIDs {
			original[i] = v.OriginalID(c)
		}
		out = append(out, cluster.NewIntangibleCluster(v.Index()+"-"+cid, original))
	}
	return out, nil
}

// runCommand executes binPath with args in dir, capturing stdout/stderr
// to the given paths. A non-zero exit is a *Error wrapping
// ErrSubprocessFailed.
func runCommand(dir, binPath string, args []string, stdoutPath, stderrPath string) error {
	stdoutFile, err := os.Create(stdoutPath)
	if err != nil {
		return fmt.Errorf("clusterer: creating stdout capture %s: %w", stdoutPath, err)
	}
	defer stdoutFile.Close()
	stderrFile, err := os.Create(stderrPath)
	if err != nil {
		return fmt.Errorf("clusterer: creating stderr capture %s: %w", stderrPath, err)
	}
	defer stderrFile.Close()

	cmd := exec.Command(binPath, args...)
	cmd.Dir = dir
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return &Error{Binary: binPath, Args: args, ExitCode: exitCode, StderrPath: stderrPath, Err: err}
	}
	return nil
}

// sanitizeIndex replaces path-unsafe runes in a ClusterIndex (notably
// "δ") so it can appear in a filename on every target filesystem.
func sanitizeIndex(index string) string {
	out := make([]rune, 0, len(index))
	for _, r := range index {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "root"
	}
	return string(out)
}

// fromExistingClustering loads the shared "node_id cluster_id" format
// (SPEC_FULL.md §6) directly in original graph ids — this path never
// goes through a ClusterView, so there is no compact-id remapping to
// perform.
func fromExistingClustering(path string) ([]cluster.IntangibleCluster, error) {
	groups, err := readClusterFile(path)
	if err != nil {
		return nil, err
	}
	var out []cluster.IntangibleCluster
	for _, cid := range sortedClusterIDs(groups) {
		nodes := groups[cid]
		if len(nodes) <= 1 {
			continue
		}
		out = append(out, cluster.NewIntangibleCluster(cid, nodes))
	}
	return out, nil
}
