// Package resolver performs the static scope-resolution pass between
// parsing and evaluation: for every variable reference, it computes how
// many enclosing scopes separate the reference from its declaration, so
// the interpreter can step straight to the right frame instead of
// searching the environment chain by name at runtime. It also enforces scope-sensitive
// errors a pure syntax check can't catch: `return` outside a function,
// `this`/`super` outside a class, reading a local variable in its own
// initializer, a class inheriting from itself.
package resolver

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/diagnostics"
)

type FunctionType int

const (
	FunctionNone FunctionType = iota
	FunctionFunction
	FunctionMethod
	FunctionInitializer
)

type ClassType int

const (
	ClassNone ClassType = iota
	ClassClass
	ClassSubclass
)

// Resolver walks a parsed program and fills in a side table mapping
// variable-reference expression nodes to their hop count. Expr identity
// here is plain Go pointer identity, since every AST node is constructed
// and referenced through a pointer exactly once.
type Resolver struct {
	sink   *diagnostics.Sink
	scopes []map[string]bool
	locals map[ast.Expr]int
	curFn  FunctionType
	curCls ClassType
}

// New creates a Resolver reporting through sink.
func New(sink *diagnostics.Sink) *Resolver {
	return &Resolver{
		sink:   sink,
		locals: make(map[ast.Expr]int),
		curFn:  FunctionNone,
		curCls: ClassNone,
	}
}

// Locals returns the hop-count side table built up by Resolve.
func (r *Resolver) Locals() map[ast.Expr]int { return r.locals }

// Resolve walks an entire program.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present but not yet initialized in the innermost
// scope. At global scope (no enclosing scopes) declare/define are no-ops,
// which is what lets the same top-level name be redeclared freely.
func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.sink.ReportResolve(line, " at '"+name+"'", "Already a variable with this name in this scope.")
	}
	scope[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal searches the scope stack innermost-out for name and, if
// found, records the hop distance for expr.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any local scope: treated as global at runtime.
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Var:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.Break:
		// Parser already rejects break outside a loop; nothing to resolve.
	case *ast.Function:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, FunctionFunction)
	case *ast.Return:
		if r.curFn == FunctionNone {
			r.sink.ReportResolve(s.Keyword.Line, " at 'return'", "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.curFn == FunctionInitializer {
				r.sink.ReportResolve(s.Keyword.Line, " at 'return'", "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.Class:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind FunctionType) {
	enclosingFn := r.curFn
	r.curFn = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.curFn = enclosingFn
}

func (r *Resolver) resolveClass(c *ast.Class) {
	enclosingCls := r.curCls
	r.curCls = ClassClass

	r.declare(c.Name.Lexeme, c.Name.Line)
	r.define(c.Name.Lexeme)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.sink.ReportResolve(c.Superclass.Name.Line, " at '"+c.Superclass.Name.Lexeme+"'", "A class can't inherit from itself.")
		}
		r.curCls = ClassSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range c.Methods {
		kind := FunctionMethod
		if method.Name.Lexeme == "init" {
			kind = FunctionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.curCls = enclosingCls
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// Nothing to resolve.
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Unary:
		r.resolveExpr(e.Operand)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.sink.ReportResolve(e.Name.Line, " at '"+e.Name.Lexeme+"'", "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.curCls == ClassNone {
			r.sink.ReportResolve(e.Keyword.Line, " at 'this'", "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")
	case *ast.Super:
		if r.curCls == ClassNone {
			r.sink.ReportResolve(e.Keyword.Line, " at 'super'", "Can't use 'super' outside of a class.")
		} else if r.curCls != ClassSubclass {
			r.sink.ReportResolve(e.Keyword.Line, " at 'super'", "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")
	default:
		panic("resolver: unhandled expression type")
	}
}
