/*
File    : golox/cmd/golox/main.go

Package main is golox's CLI driver: no arguments starts a REPL, one
argument runs that file as a script, two or more print usage and exit
64.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/resolver"
)

const (
	version = "v0.1.0"
	prompt  = "> "
	banner  = `golox — a tree-walking Lox interpreter`
)

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		repl.New(banner, version, prompt).Run(os.Stdout)
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(64)
	}
}

// runFile implements script mode: read the whole file,
// run it, and return the process exit code — 64 if the file cannot
// be read; 65 if any static (lex/parse/resolve) error occurred, with
// no evaluation attempted; 70 if evaluation hit an uncaught runtime
// error; 0 otherwise.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return 64
	}

	lx := lexer.New(string(source))
	tokens, ok := lx.Scan()
	if !ok {
		printAll(lx.Errors())
		return 65
	}

	p := parser.New(tokens)
	stmts, ok := p.Parse()
	if !ok {
		printAll(p.Errors())
		return 65
	}

	res := resolver.New()
	locals, ok := res.Resolve(stmts)
	if !ok {
		printAll(res.Errors())
		return 65
	}

	interp := interpreter.New(os.Stdout)
	interp.Resolve(locals)
	if errs := interp.Interpret(stmts); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return 70
	}
	return 0
}

func printAll[E error](errs []E) {
	for _, e := range errs {
		redColor.Fprintf(os.Stderr, "%s\n", e)
	}
}
