/*
File    : golox/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, bool) {
	t.Helper()
	tokens, ok := lexer.New(src).Scan()
	require.True(t, ok, "lexer should not error on valid input")
	return New(tokens).Parse()
}

func TestParser_ExpressionStatement(t *testing.T) {
	stmts, ok := parse(t, "1 + 2 * 3;")
	require.True(t, ok)
	require.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Print(exprStmt.Expression))
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts, ok := parse(t, "var a = 1 + 2;")
	require.True(t, ok)
	v := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "a", v.Name.Lexeme)
	assert.Equal(t, "(+ 1 2)", ast.Print(v.Initializer))
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	stmts, ok := parse(t, "a = b = 3;")
	require.True(t, ok)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assign := exprStmt.Expression.(*ast.AssignExpr)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner := assign.Value.(*ast.AssignExpr)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_InvalidAssignmentTargetIsReportedNotFatal(t *testing.T) {
	stmts, ok := parse(t, "1 = 2;")
	assert.False(t, ok)
	// parsing still produced a statement; the program is just flagged invalid
	assert.Len(t, stmts, 1)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	stmts, ok := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.True(t, ok)
	block := stmts[0].(*ast.BlockStmt)
	require.Len(t, block.Statements, 2)
	_, isVar := block.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)
	whileStmt, isWhile := block.Statements[1].(*ast.WhileStmt)
	assert.True(t, isWhile)
	whileBody := whileStmt.Body.(*ast.BlockStmt)
	assert.Len(t, whileBody.Statements, 2)
}

func TestParser_ForOmittedConditionIsTrue(t *testing.T) {
	stmts, ok := parse(t, "for (;;) print 1;")
	require.True(t, ok)
	whileStmt := stmts[0].(*ast.WhileStmt)
	lit := whileStmt.Condition.(*ast.LiteralExpr)
	assert.Equal(t, "true", lit.Value.String())
}

func TestParser_ClassWithMethods(t *testing.T) {
	stmts, ok := parse(t, `class Greeter {
		init(name) { this.name = name; }
		hi() { print "hi " + this.name; }
	}`)
	require.True(t, ok)
	class := stmts[0].(*ast.ClassStmt)
	assert.Equal(t, "Greeter", class.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
	assert.Equal(t, "hi", class.Methods[1].Name.Lexeme)
}

func TestParser_CallAndGetChain(t *testing.T) {
	stmts, ok := parse(t, "a.b().c;")
	require.True(t, ok)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	get := exprStmt.Expression.(*ast.GetExpr)
	assert.Equal(t, "c", get.Name.Lexeme)
	_, isCall := get.Object.(*ast.CallExpr)
	assert.True(t, isCall)
}

func TestParser_TooManyArgumentsReportsButStillParses(t *testing.T) {
	src := "foo("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	stmts, ok := parse(t, src)
	assert.False(t, ok)
	require.Len(t, stmts, 1)
}

func TestParser_MissingSemicolonReportsAndSynchronizes(t *testing.T) {
	stmts, ok := parse(t, "var a = 1\nvar b = 2;")
	assert.False(t, ok)
	// synchronize resumes at the next declaration so b is still parsed
	require.Len(t, stmts, 1)
	assert.Equal(t, "b", stmts[0].(*ast.VarStmt).Name.Lexeme)
}

func TestParser_RoundTripThroughPrinter(t *testing.T) {
	stmts, ok := parse(t, "print 1 + 2 * (3 - 4);")
	require.True(t, ok)
	printed := ast.Print(stmts[0].(*ast.PrintStmt).Expression)

	reparsed, ok2 := parse(t, printed+";")
	require.True(t, ok2)
	assert.Equal(t, printed, ast.Print(reparsed[0].(*ast.ExpressionStmt).Expression))
}
