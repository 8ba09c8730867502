package runctx

import (
	"io"
	"log/slog"
)

// RunContext holds the settings shared across one CM invocation.
type RunContext struct {
	// WorkDir is where subprocess clusterers read/write their temporary
	// edgelist and clustering files.
	WorkDir string

	// BinPaths maps a clusterer name ("leiden", "ikc", "mcl", "infomap")
	// to the executable invoked for it. A missing entry means the
	// clusterer's default PATH lookup name is used.
	BinPaths map[string]string

	// Quiet suppresses the per-decision log line the engine otherwise
	// emits for every accept/split/discard.
	Quiet bool

	// Logger receives structured decision, pruning, and subprocess logs.
	Logger *slog.Logger
}

// New builds a RunContext with a default text logger writing to out.
// Pass io.Discard for out and Quiet true to run fully silent.
func New(workDir string, out io.Writer, quiet bool) *RunContext {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return &RunContext{
		WorkDir:  workDir,
		BinPaths: map[string]string{},
		Quiet:    quiet,
		Logger:   logger,
	}
}

// BinPath returns the configured path for a clusterer name, falling back
// to the name itself so os/exec.LookPath resolves it from PATH.
func (rc *RunContext) BinPath(name string) string {
	if rc.BinPaths != nil {
		if p, ok := rc.BinPaths[name]; ok && p != "" {
			return p
		}
	}
	return name
}
