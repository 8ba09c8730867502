package requirement

import (
	"errors"
	"fmt"
	"math"

	"github.com/minhyukpark/cm/cluster"
)

// ErrEmptyExpression is returned by Parse for the empty string. An empty
// threshold expression can never be satisfied as a legal input, so it is
// treated the same as any other grammatically invalid expression rather
// than special-cased into a runtime constant-zero Requirement: a zero
// threshold would satisfy the split test `0 < cut <= thr` for no cut
// size at all, which would accept every cluster immediately instead of
// rejecting every one of them. See DESIGN.md for the full reasoning.
var ErrEmptyExpression = errors.New("requirement: empty threshold expression")

// addend is one parsed, validated term of the expression.
type addend struct {
	coefficient float64
	symbol      string // "", "log10", "log2", "ln", "mcd", or "k"
}

// Requirement is a parsed MincutRequirement: a linear form over
// {log10(n), log2(n), ln(n), mcd, k} with non-negative rational
// coefficients.
type Requirement struct {
	source  string
	addends []addend
}

// Parse parses expr as a sum of terms, each a non-negative coefficient
// optionally suffixed by one of log10, log2, ln, mcd, or k. Returns
// ErrEmptyExpression for "", or a wrapped parse error for any other
// malformed input.
func Parse(expr string) (*Requirement, error) {
	if expr == "" {
		return nil, ErrEmptyExpression
	}
	parsed, err := parseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("requirement: parsing %q: %w", expr, err)
	}
	addends := make([]addend, 0, len(parsed.Terms))
	for _, t := range parsed.Terms {
		if t.Coefficient < 0 {
			return nil, fmt.Errorf("requirement: negative coefficient in %q", expr)
		}
		sym := ""
		if t.Symbol != nil {
			sym = *t.Symbol
		}
		addends = append(addends, addend{coefficient: t.Coefficient, symbol: sym})
	}
	return &Requirement{source: expr, addends: addends}, nil
}

// String returns the original expression text.
func (r *Requirement) String() string { return r.source }

// ValidityThreshold evaluates the expression against v and c: log* terms
// read v.N(), "mcd" reads v.MCD(), "k" reads c.K() when c.IsIKC() (else
// contributes 0), and a bare coefficient is a constant.
func (r *Requirement) ValidityThreshold(c cluster.Clusterer, v *cluster.ClusterView) float64 {
	n := float64(v.N())
	var total float64
	for _, a := range r.addends {
		switch a.symbol {
		case "":
			total += a.coefficient
		case "log10":
			total += a.coefficient * safeLog(math.Log10, n)
		case "log2":
			total += a.coefficient * safeLog(math.Log2, n)
		case "ln":
			total += a.coefficient * safeLog(math.Log, n)
		case "mcd":
			total += a.coefficient * float64(v.MCD())
		case "k":
			if c != nil && c.IsIKC() {
				total += a.coefficient * float64(c.K())
			}
		}
	}
	return total
}

// safeLog guards log(n) for n <= 1, where the real log functions would
// return <= 0 or -Inf; it clamps the n == 1 boundary to 0 rather than
// propagating -Inf into the threshold sum.
func safeLog(f func(float64) float64, n float64) float64 {
	if n <= 1 {
		return 0
	}
	return f(n)
}
