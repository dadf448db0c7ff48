/*
File    : golox/repl/repl.go

Package repl implements golox's interactive Read-Eval-Print Loop:
readline for line editing/history, fatih/color for banner and
diagnostic coloring. There are no REPL commands beyond EOF to quit.

One Interpreter stays alive for the whole session, so closures and
globals defined on one line are visible on the next; only the
Lexer/Parser/Resolver are fresh per line.
*/
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

var (
	blueColor = color.New(color.FgBlue)
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Repl is the interactive session: a banner and prompt wrapped
// around a persistent Interpreter.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl with the given banner, version string, and
// prompt. The prompt is conventionally "> ".
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

// PrintBanner writes the startup banner to w.
func (r *Repl) PrintBanner(w io.Writer) {
	cyanColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "golox %s — Ctrl+D to exit\n", r.Version)
}

// Run drives the REPL loop: read a line, lex/parse/resolve/interpret
// it against the session's one Interpreter, print any diagnostics,
// and prompt again. EOF (Ctrl+D) ends the session.
func (r *Repl) Run(w io.Writer) {
	r.PrintBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}
	defer rl.Close()

	interp := interpreter.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.evalLine(w, interp, line)
	}
}

// evalLine runs the lex -> parse -> resolve -> interpret pipeline for
// one REPL line. Static errors (lex/parse/resolve) are reported and
// the line is abandoned without evaluating; a runtime error is
// reported but does not end the session.
func (r *Repl) evalLine(w io.Writer, interp *interpreter.Interpreter, line string) {
	lx := lexer.New(line)
	tokens, ok := lx.Scan()
	if !ok {
		for _, e := range lx.Errors() {
			redColor.Fprintf(w, "%s\n", e)
		}
		return
	}

	p := parser.New(tokens)
	stmts, ok := p.Parse()
	if !ok {
		for _, e := range p.Errors() {
			redColor.Fprintf(w, "%s\n", e)
		}
		return
	}

	res := resolver.New()
	locals, ok := res.Resolve(stmts)
	if !ok {
		for _, e := range res.Errors() {
			redColor.Fprintf(w, "%s\n", e)
		}
		return
	}

	interp.Resolve(locals)
	for _, err := range interp.Interpret(stmts) {
		redColor.Fprintf(os.Stderr, "%s\n", err)
	}
}
