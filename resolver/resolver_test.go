package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, map[int]int, bool) {
	t.Helper()
	tokens, ok := lexer.New(src).Scan()
	require.True(t, ok)
	stmts, ok := parser.New(tokens).Parse()
	require.True(t, ok)
	locals, resolveOK := New().Resolve(stmts)
	return stmts, locals, resolveOK
}

func TestResolver_LocalVariableResolvesToZeroDepth(t *testing.T) {
	stmts, locals, ok := resolve(t, "{ var a = 1; print a; }")
	require.True(t, ok)
	block := stmts[0].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.VariableExpr)
	assert.Equal(t, 0, locals[v.ID])
}

func TestResolver_NestedBlockResolvesToOuterDepth(t *testing.T) {
	stmts, locals, ok := resolve(t, "{ var a = 1; { print a; } }")
	require.True(t, ok)
	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	printStmt := inner.Statements[0].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.VariableExpr)
	assert.Equal(t, 1, locals[v.ID])
}

func TestResolver_GlobalLeavesUnresolved(t *testing.T) {
	_, locals, ok := resolve(t, "var a = 1; print a;")
	require.True(t, ok)
	assert.Empty(t, locals)
}

func TestResolver_SelfReferencingInitializerIsError(t *testing.T) {
	_, _, ok := resolve(t, "{ var a = a; }")
	assert.False(t, ok)
}

func TestResolver_RedeclarationInLocalScopeIsError(t *testing.T) {
	_, _, ok := resolve(t, "{ var a = 1; var a = 2; }")
	assert.False(t, ok)
}

func TestResolver_RedeclarationAtGlobalScopeIsAllowed(t *testing.T) {
	_, _, ok := resolve(t, "var a = 1; var a = 2;")
	assert.True(t, ok)
}

func TestResolver_ReturnOutsideFunctionIsError(t *testing.T) {
	_, _, ok := resolve(t, "return 1;")
	assert.False(t, ok)
}

func TestResolver_ReturnInsideFunctionIsFine(t *testing.T) {
	_, _, ok := resolve(t, "fun f() { return 1; }")
	assert.True(t, ok)
}

func TestResolver_ValueReturningInitializerIsError(t *testing.T) {
	_, _, ok := resolve(t, `class C { init() { return 1; } }`)
	assert.False(t, ok)
}

func TestResolver_BareReturnInsideInitializerIsFine(t *testing.T) {
	_, _, ok := resolve(t, `class C { init() { return; } }`)
	assert.True(t, ok)
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	_, _, ok := resolve(t, "print this;")
	assert.False(t, ok)
}

func TestResolver_ThisInsideMethodResolves(t *testing.T) {
	stmts, locals, ok := resolve(t, `class C { m() { return this; } }`)
	require.True(t, ok)
	class := stmts[0].(*ast.ClassStmt)
	method := class.Methods[0]
	ret := method.Body[0].(*ast.ReturnStmt)
	this := ret.Value.(*ast.ThisExpr)
	assert.Equal(t, 0, locals[this.ID])
}

func TestResolver_ClosureCapturesEnclosingFunctionParam(t *testing.T) {
	stmts, locals, ok := resolve(t, `
		fun makeCounter(start) {
			fun inc() {
				return start;
			}
			return inc;
		}
	`)
	require.True(t, ok)
	outer := stmts[0].(*ast.FunctionStmt)
	inner := outer.Body[0].(*ast.FunctionStmt)
	ret := inner.Body[0].(*ast.ReturnStmt)
	v := ret.Value.(*ast.VariableExpr)
	assert.Equal(t, 1, locals[v.ID])
}
