package object

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Interpreter is the subset of *interpreter.Interpreter that
// object.Function needs to execute a call. Declaring it here, rather
// than importing the interpreter package directly, breaks what would
// otherwise be an import cycle (interpreter imports object for the
// value model; object would need to import interpreter right back
// for Function.Call to run a body).
type Interpreter interface {
	// ExecuteBlock runs statements in env, temporarily making env the
	// active environment, and restores the previous environment on
	// every exit path. It returns a *ReturnSignal (still wrapped as an
	// error) if a Return statement fired.
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
}

// ReturnSignal is the non-local control-flow signal a `return`
// statement produces. It implements error so it
// rides the ordinary Go error-return channel, but it is semantically
// distinct from a failure: only Function.Call consumes it, and
// anything else that receives one treats it as a bug, not a runtime
// error, if it escapes past the nearest enclosing call.
type ReturnSignal struct {
	Value Value
}

func (r *ReturnSignal) Error() string { return "return signal escaped its enclosing function" }
