/*
File    : golox/parser/expressions.go

Expression grammar, precedence low to high:

	expression  -> assignment
	assignment  -> (call ".")? IDENT "=" assignment | logic_or
	logic_or    -> logic_and ("or" logic_and)*
	logic_and   -> equality ("and" equality)*
	equality    -> comparison (("!="|"==") comparison)*
	comparison  -> term ((">"|">="|"<"|"<=") term)*
	term        -> factor (("-"|"+") factor)*
	factor      -> unary (("/"|"*") unary)*
	unary       -> ("!"|"-") unary | call
	call        -> primary ( "(" args? ")" | "." IDENT )*
	primary     -> "true"|"false"|"nil"|"this"|NUMBER|STRING|IDENT|"(" expression ")"
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses a right-associative assignment. It first parses
// a higher-precedence expression, and if that is immediately
// followed by '=', requires the left side to already be a Variable
// (rewritten to Assign) or a Get (rewritten to Set). An invalid
// target is reported but does not abort the parse.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{ID: ast.NextID(), Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.reportError(equals, "Invalid assignment target.")
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= 255 {
				p.reportError(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, ClosingParen: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{Value: token.Literal{Kind: token.LitFalse}}
	case p.match(token.True):
		return &ast.LiteralExpr{Value: token.Literal{Kind: token.LitTrue}}
	case p.match(token.Nil):
		return &ast.LiteralExpr{Value: token.Literal{Kind: token.LitNil}}
	case p.match(token.Number, token.String):
		return &ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(token.This):
		return &ast.ThisExpr{ID: ast.NextID(), Keyword: p.previous()}
	case p.match(token.Identifier):
		return &ast.VariableExpr{ID: ast.NextID(), Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.GroupingExpr{Expression: expr}
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}
