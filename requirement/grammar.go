package requirement

import "github.com/alecthomas/participle/v2"

// term is one addend of the grammar: a coefficient plus an optional
// symbol naming which per-cluster quantity it multiplies.
type term struct {
	Coefficient float64 `@(Float|Int)`
	Symbol      *string `@( "log10" | "log2" | "ln" | "mcd" | "k" )?`
}

// exprGrammar is the participle struct-tag grammar for
// "term ('+' term)*".
type exprGrammar struct {
	Terms []*term `@@ ( "+" @@ )*`
}

var grammarParser = participle.MustBuild[exprGrammar]()

func parseExpr(s string) (*exprGrammar, error) {
	return grammarParser.ParseString("", s)
}
