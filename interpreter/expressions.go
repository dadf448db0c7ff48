/*
File    : golox/interpreter/expressions.go

Expression evaluation: value model and operators, call protocol,
property access. One method per ast.Expr variant, mirroring
parser/expressions.go's one-method-per-grammar-rule split.
*/
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/token"
)

func (i *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil
	case *ast.GroupingExpr:
		return i.evaluate(e.Expression)
	case *ast.VariableExpr:
		return i.lookUpVariable(e.ID, e.Name)
	case *ast.AssignExpr:
		return i.evalAssign(e)
	case *ast.UnaryExpr:
		return i.evalUnary(e)
	case *ast.BinaryExpr:
		return i.evalBinary(e)
	case *ast.LogicalExpr:
		return i.evalLogical(e)
	case *ast.CallExpr:
		return i.evalCall(e)
	case *ast.GetExpr:
		return i.evalGet(e)
	case *ast.SetExpr:
		return i.evalSet(e)
	case *ast.ThisExpr:
		return i.lookUpVariable(e.ID, e.Keyword)
	default:
		panic("interpreter: unhandled expression type")
	}
}

func literalValue(lit token.Literal) object.Value {
	switch lit.Kind {
	case token.LitString:
		return object.Str(lit.Str)
	case token.LitNumber:
		return object.Num(lit.Num)
	case token.LitTrue:
		return object.Bool(true)
	case token.LitFalse:
		return object.Bool(false)
	default:
		return object.NilValue
	}
}

// lookUpVariable resolves name via the resolver's depth table when
// present, falling back to globals otherwise.
func (i *Interpreter) lookUpVariable(exprID int, name token.Token) (object.Value, error) {
	if depth, ok := i.locals[exprID]; ok {
		return i.environment.GetAt(depth, name.Lexeme).(object.Value), nil
	}
	v, ok := i.Globals.Get(name.Lexeme)
	if !ok {
		return nil, loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	return v.(object.Value), nil
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr) (object.Value, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e.ID]; ok {
		i.environment.AssignAt(depth, e.Name.Lexeme, value)
		return value, nil
	}
	if !i.Globals.Assign(e.Name.Lexeme, value) {
		return nil, loxerr.NewRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (object.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.Minus:
		n, ok := right.(object.Num)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return object.Bool(!object.IsTruthy(right)), nil
	default:
		panic("interpreter: unreachable unary operator")
	}
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (object.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.Plus:
		return evalPlus(left, right, e.Op)
	case token.Minus, token.Star, token.Slash:
		return evalArithmetic(e.Op, left, right)
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return evalComparison(e.Op, left, right)
	case token.BangEqual:
		return object.Bool(!object.Equal(left, right)), nil
	case token.EqualEqual:
		return object.Bool(object.Equal(left, right)), nil
	default:
		panic("interpreter: unreachable binary operator")
	}
}

// evalPlus implements Lox's overloaded `+`: Num+Num adds,
// Str+Str concatenates, anything else is a runtime error.
func evalPlus(left, right object.Value, op token.Token) (object.Value, error) {
	if ln, ok := left.(object.Num); ok {
		if rn, ok := right.(object.Num); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(object.Str); ok {
		if rs, ok := right.(object.Str); ok {
			return ls + rs, nil
		}
	}
	return nil, loxerr.NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

// evalArithmetic implements `- * /`, all requiring two Nums.
// Division by zero is deliberately not special-cased: it follows
// IEEE 754 and yields ±Inf or NaN rather than a runtime error.
func evalArithmetic(op token.Token, left, right object.Value) (object.Value, error) {
	ln, lok := left.(object.Num)
	rn, rok := right.(object.Num)
	if !lok || !rok {
		return nil, loxerr.NewRuntimeError(op, "Operands must be numbers.")
	}
	switch op.Type {
	case token.Minus:
		return ln - rn, nil
	case token.Star:
		return ln * rn, nil
	case token.Slash:
		return ln / rn, nil
	default:
		panic("interpreter: unreachable arithmetic operator")
	}
}

func evalComparison(op token.Token, left, right object.Value) (object.Value, error) {
	ln, lok := left.(object.Num)
	rn, rok := right.(object.Num)
	if !lok || !rok {
		return nil, loxerr.NewRuntimeError(op, "Operands must be numbers.")
	}
	switch op.Type {
	case token.Greater:
		return object.Bool(ln > rn), nil
	case token.GreaterEqual:
		return object.Bool(ln >= rn), nil
	case token.Less:
		return object.Bool(ln < rn), nil
	case token.LessEqual:
		return object.Bool(ln <= rn), nil
	default:
		panic("interpreter: unreachable comparison operator")
	}
}

// evalLogical implements short-circuiting `and`/`or`: the operator
// returns the last value actually evaluated, not a coerced boolean.
func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (object.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Type == token.Or {
		if object.IsTruthy(left) {
			return left, nil
		}
	} else if !object.IsTruthy(left) {
		return left, nil
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalCall(e *ast.CallExpr) (object.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		v, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.ClosingParen, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(e.ClosingParen, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.GetExpr) (object.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*object.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	v, found := inst.Get(e.Name.Lexeme)
	if !found {
		return nil, loxerr.NewRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.SetExpr) (object.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*object.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, value)
	return value, nil
}
