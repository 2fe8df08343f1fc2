package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// ParseString parses a single formula line into the raw grammar tree.
// filename is used only for position reporting in returned errors.
func ParseString(filename, source string) (*Program, error) {
	parser, err := participle.Build[Program](
		participle.Lexer(FormulaLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	program, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return program, nil
}
