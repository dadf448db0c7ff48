/*
File    : golox/ast/printer.go

A small parenthesizing pretty-printer used by tests and for debugging.
It writes expressions in Lisp-style prefix notation, e.g.
`(+ 1 (* 2 3))`; that notation is not Lox source, so the parser does
not accept printed output back. Collapsed into a single recursive
Print function rather than a set of visitors.
*/
package ast

import (
	"fmt"
	"strings"
)

// Print renders expr as a fully-parenthesized prefix-notation string.
// The result is not Lox syntax and does not re-parse.
func Print(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value.String()
	case *VariableExpr:
		return e.Name.Lexeme
	case *AssignExpr:
		return parenthesize("=", &VariableExpr{Name: e.Name}, e.Value)
	case *UnaryExpr:
		return parenthesize(e.Op.Lexeme, e.Right)
	case *BinaryExpr:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *GroupingExpr:
		return parenthesize("group", e.Expression)
	case *CallExpr:
		parts := []string{Print(e.Callee)}
		for _, a := range e.Args {
			parts = append(parts, Print(a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *GetExpr:
		return fmt.Sprintf("(. %s %s)", Print(e.Object), e.Name.Lexeme)
	case *SetExpr:
		return fmt.Sprintf("(= (. %s %s) %s)", Print(e.Object), e.Name.Lexeme, Print(e.Value))
	case *ThisExpr:
		return "this"
	default:
		return "<?>"
	}
}

func parenthesize(name string, exprs ...Expr) string {
	parts := []string{name}
	for _, e := range exprs {
		parts = append(parts, Print(e))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// PrintStmts renders a statement list, one printed expression or
// nested block per line, for debugging and test fixtures.
func PrintStmts(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(printStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func printStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return Print(s.Expression) + ";"
	case *PrintStmt:
		return "(print " + Print(s.Expression) + ")"
	case *VarStmt:
		if s.Initializer == nil {
			return fmt.Sprintf("(var %s)", s.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, Print(s.Initializer))
	case *BlockStmt:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range s.Statements {
			b.WriteByte(' ')
			b.WriteString(printStmt(inner))
		}
		b.WriteByte(')')
		return b.String()
	case *IfStmt:
		if s.ElseBranch == nil {
			return fmt.Sprintf("(if %s %s)", Print(s.Condition), printStmt(s.ThenBranch))
		}
		return fmt.Sprintf("(if %s %s %s)", Print(s.Condition), printStmt(s.ThenBranch), printStmt(s.ElseBranch))
	case *WhileStmt:
		return fmt.Sprintf("(while %s %s)", Print(s.Condition), printStmt(s.Body))
	case *FunctionStmt:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		return fmt.Sprintf("(fun %s(%s) %s)", s.Name.Lexeme, strings.Join(params, ", "), PrintStmts(s.Body))
	case *ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return "(return " + Print(s.Value) + ")"
	case *ClassStmt:
		var b strings.Builder
		fmt.Fprintf(&b, "(class %s", s.Name.Lexeme)
		for _, m := range s.Methods {
			b.WriteByte(' ')
			b.WriteString(printStmt(m))
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "<?>"
	}
}
