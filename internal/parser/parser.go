package parser

import (
	"robdd/grammar"
	"robdd/internal/ast"
	"robdd/internal/errors"
)

// ParseSource parses one formula line into the clean formula AST. filename
// is used only for position reporting; CLI callers typically pass "stdin".
//
// On failure it returns a CompilerError (code E0100) ready to hand to an
// errors.ErrorReporter, per spec.md §7's ParseError contract: "Propagated
// from the parser untouched to the CLI and rendered textually; no partial
// diagram is produced."
func ParseSource(filename, source string) (ast.Expr, *errors.CompilerError) {
	program, err := grammar.ParseString(filename, source)
	if err != nil {
		ce := errors.ParseFailure(err)
		return nil, &ce
	}
	return convertProgram(program), nil
}
