/*
File    : golox/interpreter/interpreter.go

Package interpreter implements golox's tree-walking evaluator:
statement execution, environment management, and the call and
property protocols. An Interpreter holds the active scope and an
io.Writer for `print` output; a constructor seeds globals with
clock().

Evaluation returns `(object.Value, error)` throughout: ordinary Go
error handling, with `return` given a distinct control-flow type
(object.ReturnSignal) that rides the error channel without being
confused for a runtime failure anywhere but Function.Call.
*/
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/object"
)

// Interpreter walks statements against a chain of Environments.
// Globals is the root environment, seeded with clock(); environment
// is whichever scope is currently active and moves as blocks/calls
// are entered and left.
type Interpreter struct {
	Globals     *environment.Environment
	environment *environment.Environment
	locals      map[int]int
	Writer      io.Writer
}

// New creates an Interpreter writing `print` output to w, with a
// fresh global environment seeded with clock().
func New(w io.Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", object.NewClock())
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(map[int]int),
		Writer:      w,
	}
}

// Resolve merges a resolver depth table into the interpreter's own.
// Node IDs are process-wide unique (ast.NextID), so repeated calls
// across separate REPL lines accumulate safely without ever colliding
// or needing to replace prior entries.
func (i *Interpreter) Resolve(locals map[int]int) {
	for id, depth := range locals {
		i.locals[id] = depth
	}
}

// Interpret executes each top-level statement in order. A runtime
// failure aborts only the statement it occurred in: subsequent
// top-level statements still run, and every error encountered is
// returned so the driver can report all of them.
func (i *Interpreter) Interpret(stmts []ast.Stmt) []error {
	var errs []error
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err
	case *ast.PrintStmt:
		return i.executePrint(s)
	case *ast.VarStmt:
		return i.executeVar(s)
	case *ast.BlockStmt:
		return i.ExecuteBlock(s.Statements, environment.New(i.environment))
	case *ast.IfStmt:
		return i.executeIf(s)
	case *ast.WhileStmt:
		return i.executeWhile(s)
	case *ast.FunctionStmt:
		i.environment.Define(s.Name.Lexeme, &object.Function{Declaration: s, Closure: i.environment})
		return nil
	case *ast.ReturnStmt:
		return i.executeReturn(s)
	case *ast.ClassStmt:
		return i.executeClass(s)
	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

func (i *Interpreter) executePrint(s *ast.PrintStmt) error {
	v, err := i.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.Writer, v.String())
	return nil
}

func (i *Interpreter) executeVar(s *ast.VarStmt) error {
	value := object.Value(object.NilValue)
	if s.Initializer != nil {
		v, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	i.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) executeIf(s *ast.IfStmt) error {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if object.IsTruthy(cond) {
		return i.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return i.execute(s.ElseBranch)
	}
	return nil
}

func (i *Interpreter) executeWhile(s *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !object.IsTruthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) executeReturn(s *ast.ReturnStmt) error {
	value := object.Value(object.NilValue)
	if s.Value != nil {
		v, err := i.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &object.ReturnSignal{Value: value}
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) error {
	i.environment.Define(s.Name.Lexeme, object.NilValue)

	methods := make(map[string]*object.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &object.Function{
			Declaration:   m,
			Closure:       i.environment,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}
	class := &object.Class{Name: s.Name.Lexeme, Methods: methods}
	i.environment.Assign(s.Name.Lexeme, class)
	return nil
}

// ExecuteBlock runs statements against env, making it the active
// environment for their duration, and restores the previous
// environment on every exit path — normal completion, a Return
// signal, or a runtime error. It implements object.Interpreter, so
// object.Function.Call can drive a function body through the same
// machinery a block statement uses.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := i.environment
	defer func() { i.environment = previous }()

	i.environment = env
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

var _ object.Interpreter = (*Interpreter)(nil)
