package robdd

import (
	"fmt"

	"robdd/internal/ast"
	"robdd/internal/rename"
)

// Driver walks a parsed formula tree and produces the root handle of its
// ROBDD, consulting a VarTable for the dense id behind each variable name.
// It performs no reduction work itself: all canonicalization happens
// inside Store.Intern via Apply and Negate.
type Driver struct {
	Store *Store
	Vars  *rename.VarTable
}

// NewDriver returns a driver over store using vars to resolve variable
// names to dense ids.
func NewDriver(store *Store, vars *rename.VarTable) *Driver {
	return &Driver{Store: store, Vars: vars}
}

// Variable returns the elementary diagram x_id: a node with low=⊥, high=⊤.
func (d *Driver) Variable(id int) (Handle, error) {
	return d.Store.Intern(id, False, True)
}

// Build walks expr post-order, invoking Apply and Negate to assemble the
// root handle.
func (d *Driver) Build(expr ast.Expr) (Handle, error) {
	switch n := expr.(type) {
	case *ast.BoolLiteral:
		if n.Value {
			return True, nil
		}
		return False, nil

	case *ast.IdentExpr:
		return d.Variable(d.Vars.ID(n.Name))

	case *ast.UnaryExpr:
		v, err := d.Build(n.Value)
		if err != nil {
			return Handle{}, err
		}
		return d.Store.Negate(v)

	case *ast.BinaryExpr:
		left, err := d.Build(n.Left)
		if err != nil {
			return Handle{}, err
		}
		right, err := d.Build(n.Right)
		if err != nil {
			return Handle{}, err
		}
		op, err := opFromAST(n.Op)
		if err != nil {
			return Handle{}, err
		}
		return d.Store.Apply(op, left, right)

	default:
		return Handle{}, fmt.Errorf("robdd: unsupported expression node %T", expr)
	}
}

func opFromAST(op string) (Op, error) {
	switch op {
	case ast.OpAnd:
		return OpAnd, nil
	case ast.OpOr:
		return OpOr, nil
	case ast.OpImplies:
		return OpImplies, nil
	case ast.OpIff:
		return OpIff, nil
	default:
		return 0, fmt.Errorf("robdd: unknown operator %q", op)
	}
}
