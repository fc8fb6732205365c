// Package derivation replays proofs declaratively: a proof is rendered
// as a Prolog program over its line indices, and a query asks whether
// the conclusion is reachable from assumption lines through step
// references. Unlike the sequential validity check, the replay is
// indifferent to line order.
package derivation

import (
	"fmt"

	"github.com/ichiban/prolog"

	"hilbert/formula"
	"hilbert/proof"
)

// Logic wraps a Prolog interpreter. Programs loaded by successive
// calls accumulate in the same interpreter.
type Logic struct {
	interpreter *prolog.Interpreter
}

func NewLogic() *Logic {
	return &Logic{interpreter: prolog.New(nil, nil)}
}

// ConsultAndCheck loads program and reports whether query has a
// solution.
func (l *Logic) ConsultAndCheck(program, query string) bool {
	if err := l.interpreter.Exec(program); err != nil {
		panic(err)
	}
	solutions, err := l.interpreter.Query(query)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := solutions.Close(); err != nil {
			panic(err)
		}
	}()
	return solutions.Next()
}

// ConsultAndSolve loads program and returns the bindings of the first
// solution of query, or false when there is none.
func (l *Logic) ConsultAndSolve(program, query string) (map[string]string, bool) {
	if err := l.interpreter.Exec(program); err != nil {
		panic(err)
	}
	solutions, err := l.interpreter.Query(query)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := solutions.Close(); err != nil {
			panic(err)
		}
	}()
	if !solutions.Next() {
		return nil, false
	}
	scanned := make(map[string]prolog.TermString)
	if err := solutions.Scan(&scanned); err != nil {
		panic(err)
	}
	bindings := make(map[string]string, len(scanned))
	for name, value := range scanned {
		bindings[name] = string(value)
	}
	return bindings, true
}

// Term renders f as a Prolog term: variables become atoms, constants
// become t and f, and every connective becomes a compound term.
func Term(f *formula.Formula) string {
	switch {
	case formula.IsVariable(f.Root):
		return f.Root
	case formula.IsConstant(f.Root):
		if f.Root == "T" {
			return "t"
		}
		return "f"
	case formula.IsUnary(f.Root):
		return "not(" + Term(f.First) + ")"
	}
	return functor(f.Root) + "(" + Term(f.First) + ", " + Term(f.Second) + ")"
}

func functor(op string) string {
	switch op {
	case "&":
		return "and"
	case "|":
		return "or"
	case "->":
		return "imp"
	case "+":
		return "xor"
	case "<->":
		return "iff"
	case "-&":
		return "nand"
	case "-|":
		return "nor"
	}
	panic("unknown operator " + op)
}

type programLine struct {
	Index        int
	Term         string
	Refs         []int
	IsAssumption bool
}

// Render produces the Prolog program for p: one line/2 fact per proof
// line, an assumption/1 or step/2 fact for its justification, and the
// derivability rules.
func Render(p *proof.Proof) string {
	lines := make([]programLine, len(p.Lines))
	for i, line := range p.Lines {
		lines[i] = programLine{
			Index:        i,
			Term:         Term(line.Formula),
			Refs:         line.Refs,
			IsAssumption: line.IsAssumption(),
		}
	}
	return templateToString(programTemplate, struct{ Lines []programLine }{lines})
}

// Check reports whether the final line of p carries the statement's
// conclusion and is derivable from assumption lines through step
// references. Lines may reference later lines; a proof whose
// references form a cycle does not terminate.
func Check(p *proof.Proof) bool {
	if len(p.Lines) == 0 {
		return false
	}
	last := len(p.Lines) - 1
	query := fmt.Sprintf("line(%d, %s), derivable(%d).", last, Term(p.Statement.Conclusion), last)
	return NewLogic().ConsultAndCheck(Render(p), query)
}
