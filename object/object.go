/*
File    : golox/object/object.go

Package object defines golox's runtime value model: Nil, Bool, Num,
Str, Callable, Instance. Each variant is a small type implementing a
shared Value interface; Class and Instance round out the set with the
object-oriented values a tree-walking evaluator needs.
*/
package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is the tagged interface every runtime value implements.
type Value interface {
	// String renders the value per Lox's stringify rules.
	String() string
}

// Nil is Lox's absent value. There is exactly one: the package-level
// NilValue, so callers may compare with ==.
type Nil struct{}

func (Nil) String() string { return "nil" }

// NilValue is the sole Nil instance.
var NilValue = Nil{}

// Bool wraps a boolean.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Num wraps a float64. Lox has one numeric type.
type Num float64

// String renders integral values without a trailing ".0" and
// otherwise a shortest round-trip decimal. Division by zero is not a
// runtime error, so ±Inf/NaN need their own stringification.
func (n Num) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == float64(int64(f)) && !strings.ContainsAny(strconv.FormatFloat(f, 'g', -1, 64), "eE") {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Str wraps a string.
type Str string

func (s Str) String() string { return string(s) }

// IsTruthy implements Lox's truthiness: false and nil are falsy,
// everything else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// Equal implements Lox's total, cross-variant-always-unequal equality.
// Numbers compare with native float64 == semantics, so NaN != NaN.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Num:
		bv, ok := b.(Num)
		return ok && float64(av) == float64(bv)
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	default:
		// Callable and Instance values are compared by identity.
		return a == b
	}
}

// Callable is implemented by any Value that can appear as the callee
// of a Call expression: native functions, user
// functions, and classes (whose call constructs an instance).
type Callable interface {
	Value
	Arity() int
	// Call receives the already-evaluated arguments. interp is typed
	// as interface{} here to avoid an import cycle with the
	// interpreter package; implementations that need it type-assert it
	// to this package's Interpreter interface.
	Call(interp interface{}, args []Value) (Value, error)
}

// NativeFunction wraps a Go function as a Lox Callable, e.g. clock().
type NativeFunction struct {
	FnName string
	Arty   int
	Fn     func(args []Value) (Value, error)
}

func (n *NativeFunction) String() string { return fmt.Sprintf("<fn %s>", n.FnName) }
func (n *NativeFunction) Arity() int     { return n.Arty }
func (n *NativeFunction) Call(_ interface{}, args []Value) (Value, error) {
	return n.Fn(args)
}
