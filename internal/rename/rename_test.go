package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"robdd/internal/ast"
)

func ident(name string) ast.Expr {
	return &ast.IdentExpr{Name: name}
}

func TestRenameAssignsFirstSeenOrder(t *testing.T) {
	formula := &ast.BinaryExpr{
		Op:    ast.OpAnd,
		Left:  ident("b"),
		Right: &ast.BinaryExpr{Op: ast.OpOr, Left: ident("a"), Right: ident("b")},
	}

	table := Rename(formula)

	assert.Equal(t, 0, table.ID("b"))
	assert.Equal(t, 1, table.ID("a"))
	assert.Equal(t, 2, table.Len())
}

func TestVarTableInverseLookup(t *testing.T) {
	table := NewVarTable()
	assert.Equal(t, 0, table.ID("x1"))
	assert.Equal(t, 1, table.ID("x2"))

	assert.Equal(t, "x1", table.Name(0))
	assert.Equal(t, "x2", table.Name(1))
	assert.Equal(t, "", table.Name(99))
}

func TestRenameIsIdempotentOnRepeatedNames(t *testing.T) {
	formula := &ast.UnaryExpr{Value: ident("a")}
	table := Rename(formula)
	first := table.ID("a")
	second := table.ID("a")
	assert.Equal(t, first, second)
}
