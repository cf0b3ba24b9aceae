// Package repl implements the interactive Read-Eval-Print Loop. Each
// input line is treated as a complete program: scanned, parsed,
// resolved, and either evaluated as a single expression (whose value is
// printed) or executed as a sequence of statements. Interpreter state,
// including defined globals, persists across inputs.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/diagnostics"
	"github.com/akashmaji946/lox-mix/interp"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/resolver"
	"github.com/akashmaji946/lox-mix/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// REPL holds the banner and prompt configuration for an interactive
// session. State that must persist across input lines (the interpreter
// and its globals) lives in Start's locals, not here, so a REPL value
// stays reusable across sessions.
type REPL struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a REPL with the given banner configuration.
func New(banner, version, author, line, license, prompt string) *REPL {
	return &REPL{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *REPL) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop. readline.New binds directly to the process's
// own stdin/stdout regardless of the reader argument, so reader is
// accepted for interface symmetry with file-mode execution but only
// writer is actually used for output.
func (r *REPL) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sink := diagnostics.NewSink(writer)
	in := interp.New(writer, sink)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, sink, in)
	}
}

// evalLine runs one REPL input through the full pipeline. sink's sticky
// error flags are reset first so errors from a previous line never
// suppress output for this one.
func (r *REPL) evalLine(writer io.Writer, line string, sink *diagnostics.Sink, in *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	sink.Reset()

	scanner := lexer.NewScanner(line)
	tokens, scanErrs := scanner.ScanTokens()
	for _, e := range scanErrs {
		sink.ReportSyntax(e.Line, "", e.Message)
	}
	if sink.HadSyntax() {
		return
	}

	p := parser.NewParser(tokens, sink)
	statements := p.Parse()
	if sink.HadSyntax() {
		return
	}

	res := resolver.New(sink)
	res.Resolve(statements)
	if sink.HadResolve() {
		return
	}
	in.SetLocals(res.Locals())

	if expr, ok := singleExpressionStatement(statements); ok {
		v, ok := in.EvaluateTopLevel(expr)
		if !ok {
			return
		}
		yellowColor.Fprintf(writer, "%s\n", value.Stringify(v))
		return
	}

	in.Interpret(statements)
}

// singleExpressionStatement reports whether statements is exactly one
// bare expression statement, the REPL-only case where the value is
// printed instead of discarded.
func singleExpressionStatement(statements []ast.Stmt) (ast.Expr, bool) {
	if len(statements) != 1 {
		return nil, false
	}
	if expr, ok := statements[0].(*ast.Expression); ok {
		return expr.Expr, true
	}
	return nil, false
}
