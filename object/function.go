/*
File    : golox/object/function.go

Function is golox's Callable value for user-defined functions and
methods: a declaration paired with the closure environment active at
its definition. IsInitializer lets `init` methods special-case their
return value.
*/
package object

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Function is a user-defined function or method.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call binds parameters to args in a fresh environment enclosed by
// the function's closure, then executes its body. Non-initializer
// functions yield the value carried by a Return signal, or Nil on
// fall-through; initializers always yield the bound `this`, which
// GetAt(0, "this") recovers from the closure built by Bind.
func (f *Function) Call(interp interface{}, args []Value) (Value, error) {
	it := interp.(Interpreter)
	env := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := it.ExecuteBlock(f.Declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*ReturnSignal); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this").(Value), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this").(Value), nil
	}
	return NilValue, nil
}

// Bind returns a copy of f whose closure additionally binds `this`
// to instance, one scope inside f's own closure: a bound method's
// closure has exactly one extra scope at depth 0 containing only
// this.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}
