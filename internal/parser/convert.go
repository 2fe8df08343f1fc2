// Package parser SPDX-License-Identifier: Apache-2.0
//
// Package parser converts the raw participle grammar tree (package grammar)
// into the clean internal/ast formula tree. This is the same boundary the
// teacher draws between its grammar package and internal/ast, and mirrors
// internal/ir/builder.go's job of lowering one tree shape into another.
package parser

import (
	"robdd/grammar"
	"robdd/internal/ast"

	plex "github.com/alecthomas/participle/v2/lexer"
)

func convertPos(p plex.Position) ast.Position {
	return ast.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func convertProgram(p *grammar.Program) ast.Expr {
	return convertExpr(p.Formula)
}

func convertExpr(e *grammar.Expr) ast.Expr {
	left := convertOrExpr(e.Left)
	if e.Op == nil {
		return left
	}
	right := convertExpr(e.Right)
	return &ast.BinaryExpr{
		Pos:    convertPos(e.Pos),
		EndPos: right.NodeEndPos(),
		Op:     *e.Op,
		Left:   left,
		Right:  right,
	}
}

func convertOrExpr(o *grammar.OrExpr) ast.Expr {
	result := convertAndExpr(o.Left)
	for _, r := range o.Rest {
		right := convertAndExpr(r)
		result = &ast.BinaryExpr{
			Pos:    result.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     ast.OpOr,
			Left:   result,
			Right:  right,
		}
	}
	return result
}

func convertAndExpr(a *grammar.AndExpr) ast.Expr {
	result := convertUnaryExpr(a.Left)
	for _, r := range a.Rest {
		right := convertUnaryExpr(r)
		result = &ast.BinaryExpr{
			Pos:    result.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     ast.OpAnd,
			Left:   result,
			Right:  right,
		}
	}
	return result
}

func convertUnaryExpr(u *grammar.UnaryExpr) ast.Expr {
	result := convertPrimaryExpr(u.Value)
	pos := convertPos(u.Pos)
	for range u.Nots {
		result = &ast.UnaryExpr{
			Pos:    pos,
			EndPos: result.NodeEndPos(),
			Value:  result,
		}
	}
	return result
}

func convertPrimaryExpr(p *grammar.PrimaryExpr) ast.Expr {
	pos := convertPos(p.Pos)
	end := convertPos(p.EndPos)
	switch {
	case p.True:
		return &ast.BoolLiteral{Pos: pos, EndPos: end, Value: true}
	case p.False:
		return &ast.BoolLiteral{Pos: pos, EndPos: end, Value: false}
	case p.Ident != nil:
		return &ast.IdentExpr{Pos: pos, EndPos: end, Name: *p.Ident}
	default:
		return convertExpr(p.Paren)
	}
}
