// Package diagnostics collects and formats scan/parse/resolve/runtime
// diagnostics. The "had error" state lives on a per-run Sink rather than
// in process globals, so a driver can run multiple programs (REPL inputs,
// socket connections) without one run's errors bleeding into the next.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Kind distinguishes the three error categories, each with its own sticky
// flag and phase-suppression rule.
type Kind int

const (
	Syntax Kind = iota
	Resolve
	Runtime
)

// Diagnostic is one reported problem, anchored at a source line and
// optionally at a specific lexeme ("at end" / "at 'LEXEME'").
type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string // "", " at end", or " at 'LEXEME'"; empty for Runtime
	Message string
}

// Sink accumulates diagnostics for a single run (one file-mode execution,
// or one REPL input) and exposes the sticky flags the driver needs to pick
// an exit code and decide whether to suppress later phases.
type Sink struct {
	diagnostics []Diagnostic
	hadSyntax   bool
	hadResolve  bool
	hadRuntime  bool
	writer      io.Writer
}

// NewSink creates a Sink that writes formatted diagnostics to w as they are
// reported.
func NewSink(w io.Writer) *Sink {
	return &Sink{writer: w}
}

// Reset clears sticky flags and collected diagnostics so the REPL can
// reuse one Sink across inputs while the interpreter state persists.
func (s *Sink) Reset() {
	s.diagnostics = nil
	s.hadSyntax = false
	s.hadResolve = false
	s.hadRuntime = false
}

func (s *Sink) HadSyntax() bool  { return s.hadSyntax }
func (s *Sink) HadResolve() bool { return s.hadResolve }
func (s *Sink) HadRuntime() bool { return s.hadRuntime }

// HadError reports whether any scan/parse/resolve diagnostic was recorded
// (the condition that suppresses later pipeline phases).
func (s *Sink) HadError() bool { return s.hadSyntax || s.hadResolve }

// ReportSyntax records a scan or parse diagnostic: `[line L] Error<where>: MESSAGE`.
func (s *Sink) ReportSyntax(line int, where, message string) {
	s.hadSyntax = true
	s.emit(Diagnostic{Kind: Syntax, Line: line, Where: where, Message: message})
}

// ReportResolve records a static resolution diagnostic, formatted the same
// way as a syntax error.
func (s *Sink) ReportResolve(line int, where, message string) {
	s.hadResolve = true
	s.emit(Diagnostic{Kind: Resolve, Line: line, Where: where, Message: message})
}

// ReportRuntime records a runtime error: `[line L] MESSAGE`, anchored at
// the offending token's line, with no "<where>" clause.
func (s *Sink) ReportRuntime(line int, message string) {
	s.hadRuntime = true
	s.emit(Diagnostic{Kind: Runtime, Line: line, Message: message})
}

func (s *Sink) emit(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
	if s.writer == nil {
		return
	}
	red := color.New(color.FgRed).SprintFunc()
	switch d.Kind {
	case Runtime:
		fmt.Fprintln(s.writer, red(fmt.Sprintf("[line %d] %s", d.Line, d.Message)))
	default:
		fmt.Fprintln(s.writer, red(fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)))
	}
}

// All returns every diagnostic recorded so far, in report order.
func (s *Sink) All() []Diagnostic { return s.diagnostics }
