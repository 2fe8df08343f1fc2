package errors

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"robdd/internal/ast"
)

// CompilerErrorBuilder provides a fluent interface for creating diagnostics
// with suggestions, mirroring the teacher's SemanticErrorBuilder.
type CompilerErrorBuilder struct {
	err CompilerError
}

func newBuilder(code, message string, pos ast.Position) *CompilerErrorBuilder {
	return &CompilerErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *CompilerErrorBuilder) WithLength(length int) *CompilerErrorBuilder {
	b.err.Length = length
	return b
}

func (b *CompilerErrorBuilder) WithSuggestion(message string) *CompilerErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *CompilerErrorBuilder) WithNote(note string) *CompilerErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *CompilerErrorBuilder) WithHelp(help string) *CompilerErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *CompilerErrorBuilder) Build() CompilerError {
	return b.err
}

// ParseFailure wraps a participle parse error into a CompilerError with a
// caret-style position, falling back to position (1,1) when the underlying
// error carries none (e.g. an empty input line).
func ParseFailure(err error) CompilerError {
	pos := ast.Position{Line: 1, Column: 1}
	msg := err.Error()

	if pe, ok := err.(participle.Error); ok {
		p := pe.Position()
		pos = ast.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
		msg = pe.Message()
	}

	return newBuilder(ErrorParse, msg, pos).
		WithSuggestion("check operator precedence: !, &, |, then -> or <-> (right-associative)").
		WithNote("atoms are identifiers; true/false are reserved constants").
		Build()
}

// InvariantViolation formats a programmer-error diagnostic for a violated
// Node Store precondition. Per spec.md §7 these abort the process — callers
// should pass the result to panic, never return it to a caller expecting a
// recoverable error.
func InvariantViolation(format string, args ...interface{}) CompilerError {
	return newBuilder(ErrorInvariantViolation, fmt.Sprintf(format, args...), ast.Position{}).
		WithNote("this indicates a bug in the code calling the Node Store directly; it should never be reachable through Driver").
		Build()
}

// ResourceExhausted reports that the Node Store's arena could not grow
// further to satisfy an Intern call.
func ResourceExhausted(limit int) CompilerError {
	return newBuilder(ErrorResourceExhaustion,
		fmt.Sprintf("node store exhausted its %d-node limit", limit), ast.Position{}).
		WithHelp("raise the store's node limit or simplify the formula").
		Build()
}
