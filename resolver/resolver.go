/*
File    : golox/resolver/resolver.go

Package resolver implements golox's static variable-resolution pass: a
single walk over the AST that computes, for every Variable/Assign/This
expression, the lexical distance from the point of use to its defining
scope, and reports a handful of static errors (self-referencing
initializers, redeclaration, return-outside-function, and
value-returning initializers).

This pass runs before evaluation so the interpreter's environment
lookups can go straight to the right scope by distance rather than
walking the chain name by name at every use. It follows the parser's
one-method-per-grammar-kind layout.
*/
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
)

// Resolver walks a parsed program once, maintaining a stack of
// lexical scopes. Each scope maps a name to whether it
// has finished being defined: declared-but-not-yet-initialized
// entries are `false`, fully bound ones are `true`.
type Resolver struct {
	scopes []map[string]bool
	locals map[int]int
	errors []*loxerr.SyntaxError

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{locals: make(map[int]int)}
}

// Resolve walks stmts and returns the expr-id -> depth side table
// plus whether resolution found zero static errors.
func (r *Resolver) Resolve(stmts []ast.Stmt) (map[int]int, bool) {
	r.resolveStmts(stmts)
	return r.locals, len(r.errors) == 0
}

// Errors returns the static errors collected during Resolve.
func (r *Resolver) Errors() []*loxerr.SyntaxError {
	return r.errors
}

func (r *Resolver) reportError(tok token.Token, message string) {
	r.errors = append(r.errors, loxerr.NewSyntaxError(tok, message))
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as not-yet-defined. A
// global declaration (empty scope stack) is a no-op: globals live
// outside the static scope chain entirely.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reportError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack outward from the innermost
// scope; the first one containing name determines the recorded
// depth. No match leaves the expression unresolved, meaning global.
func (r *Resolver) resolveLocal(exprID int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.resolveVarStmt(s)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.ReturnStmt:
		r.resolveReturnStmt(s)
	case *ast.ClassStmt:
		r.resolveClassStmt(s)
	}
}

// resolveVarStmt implements the self-reference check: `var a = a;`
// is an error when `a` already names a (not-yet-defined) binding in
// the enclosing scope, because declare() has already marked it
// not-yet-defined before the initializer is resolved.
func (r *Resolver) resolveVarStmt(s *ast.VarStmt) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
}

func (r *Resolver) resolveReturnStmt(s *ast.ReturnStmt) {
	if r.currentFunction == fnNone {
		r.reportError(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == fnInitializer {
			r.reportError(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

func (r *Resolver) resolveClassStmt(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	for _, method := range s.Methods {
		declType := fnMethod
		if method.Name.Lexeme == "init" {
			declType = fnInitializer
		}
		// A method introduces its own enclosing scope binding `this`,
		// outside the scope resolveFunction pushes for its parameters:
		// a bound method's closure has exactly one extra scope at
		// depth 0 containing only this.
		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true
		r.resolveFunction(method, declType)
		r.endScope()
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// no sub-expressions, no free variables
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reportError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID, e.Name.Lexeme)
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID, e.Name.Lexeme)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.GetExpr:
		r.resolveExpr(e.Object)
	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.reportError(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID, e.Keyword.Lexeme)
	}
}
