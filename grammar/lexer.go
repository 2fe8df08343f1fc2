package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// FormulaLexer tokenizes propositional logic formulas. Each operator
// spelling has its own rule; "<->" starts with '<' and "->" with '-', so
// neither rule can match part of the other. Identifiers are a letter
// followed by letters and digits.
var FormulaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Iff", `<->`, nil},
		{"Implies", `->`, nil},
		{"And", `&`, nil},
		{"Or", `\|`, nil},
		{"Not", `!`, nil},
		{"LParen", `\(`, nil},
		{"RParen", `\)`, nil},
		{"Ident", `[a-zA-Z][a-zA-Z0-9]*`, nil},
	},
})
