package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

// run lexes, parses, resolves, and interprets src, returning whatever
// `print` wrote and any runtime errors encountered.
func run(t *testing.T, src string) (string, []error) {
	t.Helper()
	tokens, ok := lexer.New(src).Scan()
	require.True(t, ok)
	stmts, ok := parser.New(tokens).Parse()
	require.True(t, ok)
	locals, ok := resolver.New().Resolve(stmts)
	require.True(t, ok)

	var buf bytes.Buffer
	interp := New(&buf)
	interp.Resolve(locals)
	errs := interp.Interpret(stmts)
	return buf.String(), errs
}

func TestInterpreter_ArithmeticAndPrint(t *testing.T) {
	out, errs := run(t, `print 1 + 2 * 3;`)
	assert.Empty(t, errs)
	assert.Equal(t, "7\n", out)
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out, errs := run(t, `print "foo" + "bar";`)
	assert.Empty(t, errs)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpreter_MixedPlusOperandsIsRuntimeError(t *testing.T) {
	_, errs := run(t, `print 1 + "a";`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Operands must be two numbers or two strings.")
}

func TestInterpreter_DivisionByZeroFollowsIEEE754(t *testing.T) {
	out, errs := run(t, `print 1 / 0; print -1 / 0; print 0 / 0;`)
	assert.Empty(t, errs)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"inf", "-inf", "NaN"}, lines)
}

func TestInterpreter_ComparisonRequiresNumbers(t *testing.T) {
	_, errs := run(t, `print "a" < "b";`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Operands must be numbers.")
}

func TestInterpreter_TruthinessRules(t *testing.T) {
	out, errs := run(t, `
		if (0) print "zero is truthy"; else print "zero is falsy";
		if ("") print "empty string is truthy"; else print "empty string is falsy";
		if (nil) print "nil is truthy"; else print "nil is falsy";
		if (false) print "false is truthy"; else print "false is falsy";
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "zero is truthy\nempty string is truthy\nnil is falsy\nfalse is falsy\n", out)
}

func TestInterpreter_LogicalShortCircuitReturnsOperandNotBool(t *testing.T) {
	out, errs := run(t, `print nil or "fallback"; print "first" and "second";`)
	assert.Empty(t, errs)
	assert.Equal(t, "fallback\nsecond\n", out)
}

func TestInterpreter_ClosuresCaptureByReference(t *testing.T) {
	out, errs := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpreter_FibonacciRecursion(t *testing.T) {
	out, errs := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "55\n", out)
}

func TestInterpreter_BlockScopingRestoresEnclosingEnvironment(t *testing.T) {
	out, errs := run(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
		print a;
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "local\nglobal\n", out)
}

func TestInterpreter_ClassMethodsThisAndInit(t *testing.T) {
	out, errs := run(t, `
		class Counter {
			init(start) {
				this.value = start;
			}
			increment() {
				this.value = this.value + 1;
				return this.value;
			}
		}
		var c = Counter(10);
		print c.increment();
		print c.increment();
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "11\n12\n", out)
}

func TestInterpreter_InstanceStringification(t *testing.T) {
	out, errs := run(t, `
		class Bagel {}
		print Bagel;
		print Bagel();
	`)
	assert.Empty(t, errs)
	assert.Equal(t, "Bagel\nBagel instance\n", out)
}

func TestInterpreter_CallArityMismatchIsRuntimeError(t *testing.T) {
	_, errs := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Expected 2 arguments but got 1.")
}

func TestInterpreter_GetOnNonInstanceIsRuntimeError(t *testing.T) {
	_, errs := run(t, `print (1).field;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Only instances have properties.")
}

func TestInterpreter_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, errs := run(t, `print undefined_name;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Undefined variable 'undefined_name'.")
}

func TestInterpreter_RuntimeErrorAbortsOnlyThatStatement(t *testing.T) {
	out, errs := run(t, `
		print "before";
		print 1 + "oops";
		print "after";
	`)
	require.Len(t, errs, 1)
	assert.Equal(t, "before\nafter\n", out)
}

func TestInterpreter_ClockIsZeroArityNative(t *testing.T) {
	out, errs := run(t, `print clock() >= 0;`)
	assert.Empty(t, errs)
	assert.Equal(t, "true\n", out)
}
