package grammar

import "fmt"

// String reconstructs the formula from the raw grammar tree, fully
// parenthesized. It exists mainly so grammar-level tests can assert on
// parse shape without reaching into the internal/ast conversion.

func (p *Program) String() string {
	if p.Formula == nil {
		return ""
	}
	return p.Formula.String()
}

func (e *Expr) String() string {
	if e.Op == nil {
		return e.Left.String()
	}
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), *e.Op, e.Right.String())
}

func (o *OrExpr) String() string {
	s := o.Left.String()
	for _, r := range o.Rest {
		s = fmt.Sprintf("(%s | %s)", s, r.String())
	}
	return s
}

func (a *AndExpr) String() string {
	s := a.Left.String()
	for _, r := range a.Rest {
		s = fmt.Sprintf("(%s & %s)", s, r.String())
	}
	return s
}

func (u *UnaryExpr) String() string {
	s := u.Value.String()
	for range u.Nots {
		s = fmt.Sprintf("!%s", s)
	}
	return s
}

func (p *PrimaryExpr) String() string {
	switch {
	case p.True:
		return "true"
	case p.False:
		return "false"
	case p.Ident != nil:
		return *p.Ident
	case p.Paren != nil:
		return p.Paren.String()
	default:
		return "?"
	}
}
