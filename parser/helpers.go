/*
File    : golox/parser/helpers.go

One-token-lookahead helpers shared by every grammar-rule method, plus
error reporting and panic-mode synchronize.
*/
package parser

import (
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.Eof
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past an expected token type, or reports a syntax
// error and unwinds the current declaration via panic(parseError{}).
func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt records a syntax error and returns a parseError the caller
// panics with, unwinding to the nearest declaration() recover.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	p.reportError(tok, message)
	return parseError{}
}

func (p *Parser) reportError(tok token.Token, message string) {
	p.errors = append(p.errors, loxerr.NewSyntaxError(tok, message))
}

// synchronize discards tokens until it believes it has reached a
// statement boundary: past a ';', or just before a token that starts
// a new statement. If the offending token itself starts a statement,
// nothing is discarded.
func (p *Parser) synchronize() {
	switch p.peek().Type {
	case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
