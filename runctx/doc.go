// Package runctx carries the run-wide settings a CM invocation needs but
// that do not belong on any individual graph or cluster value: where to
// stage temporary files for subprocess clusterers, which clusterer binary
// paths to invoke, whether decision logging is suppressed, and the
// *slog.Logger every other package logs through.
//
// The original tool threaded this as module-level global state (a
// process-wide working directory and a process-wide "quiet" flag); CM
// instead passes a single RunContext value explicitly, the way
// AleutianLocal's trace services thread a *slog.Logger and a context.Context
// through constructors rather than reaching for package-level globals.
package runctx
