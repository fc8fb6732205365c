package formula

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type astFormula struct {
	Var    *string     `parser:"  @Var"`
	Const  *string     `parser:"| @Const"`
	Negand *astFormula `parser:"| \"~\" @@"`
	Binary *astBinary  `parser:"| @@"`
}

type astBinary struct {
	First  *astFormula `parser:"\"(\" @@"`
	Op     string      `parser:"@Op"`
	Second *astFormula `parser:"@@ \")\""`
}

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Const", Pattern: `[TF]`},
	{Name: "Var", Pattern: `[p-z][0-9]*`},
	{Name: "Op", Pattern: `<->|->|-&|-\||[&|+]`},
	{Name: "Not", Pattern: `~`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var formulaParser = participle.MustBuild[astFormula](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"))

// Parse reads a formula in the canonical syntax: variables p..z with an
// optional digit suffix, constants T and F, prefix ~, and the binary
// operators & | -> + <-> -& -| with mandatory parentheses around every
// binary application. Whitespace between tokens is ignored.
func Parse(s string) (*Formula, error) {
	ast, err := formulaParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	return ast.formula(), nil
}

// MustParse is Parse for inputs known to be well formed, such as axiom
// text; it panics on error.
func MustParse(s string) *Formula {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func (a *astFormula) formula() *Formula {
	switch {
	case a.Var != nil:
		return &Formula{Root: *a.Var}
	case a.Const != nil:
		return &Formula{Root: *a.Const}
	case a.Negand != nil:
		return &Formula{Root: "~", First: a.Negand.formula()}
	default:
		return &Formula{
			Root:   a.Binary.Op,
			First:  a.Binary.First.formula(),
			Second: a.Binary.Second.formula(),
		}
	}
}
