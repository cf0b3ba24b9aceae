// Package interp is the tree-walking evaluator: it executes a resolved
// program by recursively walking the AST and carrying runtime state
// (the current environment, the globals, the resolver's hop-count side
// table) as it goes. The current environment is restored with `defer`
// around every block so a non-local exit can never leave it pointed at a
// scope that has already unwound.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/diagnostics"
	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/value"
)

// RuntimeError is a Lox-level runtime failure: a binary operand that
// isn't a number, a call to something that isn't callable, and so on.
// It is a distinct type from ctrl.Return/ctrl.Break so the two families
// are never confused by a stray type assertion.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Interpreter walks statements and expressions, reporting runtime errors
// through a diagnostics.Sink.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	locals  map[ast.Expr]int
	sink    *diagnostics.Sink
	out     io.Writer
}

// New creates an Interpreter that prints `print` statements to out and
// reports runtime errors through sink. The global environment is seeded
// with the native `clock` function.
func New(out io.Writer, sink *diagnostics.Sink) *Interpreter {
	globals := environment.New(nil)
	in := &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
		sink:    sink,
		out:     out,
	}
	in.defineNatives()
	return in
}

func (in *Interpreter) defineNatives() {
	in.globals.Define("clock", &value.NativeFunction{
		Name:  "clock",
		NArgs: 0,
		Fn: func(args []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	})
}

// SetLocals merges a resolver's hop-count side table into the
// interpreter's own. Merging rather than replacing matters for the REPL:
// each input line is resolved by a fresh resolver, but functions and
// classes declared on earlier lines still need their recorded hop counts
// when a later line calls into them.
func (in *Interpreter) SetLocals(locals map[ast.Expr]int) {
	for expr, hop := range locals {
		in.locals[expr] = hop
	}
}

// Interpret executes a full program, stopping and reporting on the first
// runtime error.
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			in.reportRuntime(err)
			return
		}
	}
}

// EvaluateTopLevel is the REPL-only special case: when a single input
// parses as exactly one expression statement, evaluate and return its
// value for the REPL to print, rather than running it as a statement.
// A runtime error is reported through the sink and signalled with ok=false.
func (in *Interpreter) EvaluateTopLevel(expr ast.Expr) (interface{}, bool) {
	v, err := in.evaluate(expr)
	if err != nil {
		in.reportRuntime(err)
		return nil, false
	}
	return v, true
}

func (in *Interpreter) reportRuntime(err error) {
	if rte, ok := err.(*RuntimeError); ok {
		in.sink.ReportRuntime(rte.Line, rte.Message)
		return
	}
	in.sink.ReportRuntime(0, err.Error())
}

// ExecuteBlock runs statements in env, restoring the interpreter's
// previous environment on every exit path, including a panic or a
// ctrl.Return/ctrl.Break unwinding through it. This is what lets
// Function.Call and method bodies share one code path with plain blocks.
func (in *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func runtimeErrorf(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
