package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Program is the grammar's entry point: a single formula, per spec.md §6
// ("One line on standard input: a logic formula").
//
// Precedence, high to low: Not, And, Or, (Implies | Iff). The bottom tier
// is right-associative and the two operators it contains are tied, which is
// why it is its own struct rather than a flat operator-precedence list: the
// grammar needs one production that accepts either spelling and recurses on
// itself rather than on the next tier down.
type Program struct {
	Formula *Expr `@@`
}

type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *OrExpr `@@`
	Op     *string `[ @("<->" | "->")`
	Right  *Expr   `  @@ ]`
}

type OrExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *AndExpr   `@@`
	Rest   []*AndExpr `{ "|" @@ }`
}

type AndExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *UnaryExpr   `@@`
	Rest   []*UnaryExpr `{ "&" @@ }`
}

type UnaryExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Nots   []string     `@"!"*`
	Value  *PrimaryExpr `@@`
}

type PrimaryExpr struct {
	Pos   lexer.Position
	EndPos lexer.Position
	True  bool    `(  @"true"`
	False bool    ` | @"false"`
	Ident *string `| @Ident`
	Paren *Expr   `| "(" @@ ")" )`
}
