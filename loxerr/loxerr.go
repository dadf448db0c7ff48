/*
File    : golox/loxerr/loxerr.go

Package loxerr defines the diagnostic taxonomy shared by the lexer,
parser, resolver, and interpreter. Each kind formats itself the way
the driver is expected to print it, so cmd/golox and repl only need
to print the error's Error() string to stderr.
*/
package loxerr

import (
	"fmt"

	"github.com/akashmaji946/golox/token"
)

// LexError is a character-level scanning error.
// Format: "[line N] Error: <msg>".
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// SyntaxError covers both parser and resolver static errors, which
// share one diagnostic shape:
// "[line N] Error at <where>: <msg>", where <where> is "end" for an
// Eof token or the quoted lexeme otherwise.
type SyntaxError struct {
	Tok     token.Token
	Message string
}

func NewSyntaxError(tok token.Token, message string) *SyntaxError {
	return &SyntaxError{Tok: tok, Message: message}
}

func (e *SyntaxError) Error() string {
	where := "end"
	if e.Tok.Type != token.Eof {
		where = fmt.Sprintf("'%s'", e.Tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error at %s: %s", e.Tok.Line, where, e.Message)
}

// RuntimeError is a failure detected during evaluation. It always
// carries the token responsible so the driver can report a line
// number. Format is two lines: the message, then "[line N]".
type RuntimeError struct {
	Tok     token.Token
	Message string
}

func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Tok: tok, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Tok.Line)
}
