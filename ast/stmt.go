package ast

import "github.com/akashmaji946/lox-mix/lexer"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Expression is a bare expression evaluated for its side effects.
type Expression struct {
	Expr Expr
}

// Print evaluates an expression and writes its stringified form.
type Print struct {
	Expr Expr
}

// Var declares a new binding in the current environment. Initializer is
// nil when the declaration has no `= value` clause, in which case the
// binding starts as Nil.
type Var struct {
	Name        lexer.Token
	Initializer Expr
}

// Block introduces a new lexical scope around a sequence of statements.
type Block struct {
	Statements []Stmt
}

// If executes Then when Cond is truthy, else Else (which may be nil).
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// While re-evaluates Cond before each execution of Body.
type While struct {
	Cond Expr
	Body Stmt
}

// Break unwinds to the nearest enclosing While.
type Break struct {
	Keyword lexer.Token
}

// Function declares a named, closure-capturing callable.
type Function struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// Return unwinds the current function call, optionally carrying Value.
// Value is nil for a bare `return;`.
type Return struct {
	Keyword lexer.Token
	Value   Expr
}

// Class declares a class, its optional superclass reference, and its
// methods (each represented as a *Function).
type Class struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*Function
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Break) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
