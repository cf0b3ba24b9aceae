// Command lox is the entry point for the Lox interpreter: no arguments
// starts the REPL, one argument runs a source file, and `lox serve
// <port>` starts a per-connection REPL server. Exit codes: 0 on success,
// 64 on bad usage, 65 on a syntax/resolve error, 70 on a runtime error.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/diagnostics"
	"github.com/akashmaji946/lox-mix/interp"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/repl"
	"github.com/akashmaji946/lox-mix/resolver"
	"github.com/fatih/color"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "lox >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   ██╗      ██████╗ ██╗  ██╗
   ██║     ██╔═══██╗╚██╗██╔╝
   ██║     ██║   ██║ ╚███╔╝
   ██║     ██║   ██║ ██╔██╗
   ███████╗╚██████╔╝██╔╝ ██╗
   ╚══════╝ ╚═════╝ ╚═╝  ╚═╝
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	switch len(os.Args) {
	case 1:
		r := repl.New(banner, version, author, line, license, prompt)
		r.Start(os.Stdin, os.Stdout)
	case 2:
		runFile(os.Args[1])
	case 3:
		if os.Args[1] != "serve" {
			usage()
		}
		startServer(os.Args[2])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: lox [script]")
	os.Exit(64)
}

// runFile executes one source file, exiting 65 for a syntax or resolve
// error, 70 for a runtime error, 0 on success.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(64)
	}

	sink := diagnostics.NewSink(os.Stderr)
	statements, locals, ok := compile(string(source), sink)
	if !ok {
		os.Exit(65)
	}

	in := interp.New(os.Stdout, sink)
	in.SetLocals(locals)
	in.Interpret(statements)
	if sink.HadRuntime() {
		os.Exit(70)
	}
}

// compile runs the scan/parse/resolve pipeline for file execution,
// returning false if any stage reported an error.
func compile(source string, sink *diagnostics.Sink) ([]ast.Stmt, map[ast.Expr]int, bool) {
	scanner := lexer.NewScanner(source)
	tokens, scanErrs := scanner.ScanTokens()
	for _, e := range scanErrs {
		sink.ReportSyntax(e.Line, "", e.Message)
	}
	if len(scanErrs) > 0 {
		return nil, nil, false
	}

	p := parser.NewParser(tokens, sink)
	statements := p.Parse()
	if sink.HadSyntax() {
		return nil, nil, false
	}

	res := resolver.New(sink)
	res.Resolve(statements)
	if sink.HadResolve() {
		return nil, nil, false
	}

	return statements, res.Locals(), true
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Lox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
