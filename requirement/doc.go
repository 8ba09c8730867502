// Package requirement parses and evaluates the MincutRequirement grammar,
// a small threshold expression language:
//
//	expr := term ( '+' term )*
//	term := number ( 'log10' | 'log2' | 'ln' | 'mcd' | 'k' )?
//
// A bare number is a constant term. "k" evaluates to 0 unless the
// clusterer in play is IKC, in which case it carries IKC's k. "mcd" reads
// the cluster view's current minimum induced degree; the log* terms read
// the view's current node count.
//
// Parsing uses github.com/alecthomas/participle/v2, the same
// parser-combinator library the BalancedGo example's own small edgelist
// DSL (lib/parser.go) is built on: a struct-tag grammar plus
// participle.MustBuild, instead of a hand-rolled recursive-descent parser.
package requirement
