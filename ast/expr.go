// Package ast defines the tagged-variant syntax tree the parser produces
// and the resolver/interpreter walk. Each node is a plain struct
// implementing a thin marker interface; callers use Go type switches to
// dispatch instead of a generated visitor interface.
//
// A node's identity for the resolver's side table is its own pointer
// value: Go pointers are stable, comparable identities, so no synthetic
// arena or index scheme is needed.
package ast

import "github.com/akashmaji946/lox-mix/lexer"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Literal is a constant value baked into the source: a number, string,
// boolean, or nil.
type Literal struct {
	Value interface{}
}

// Unary is a prefix operator applied to a single operand (`-x`, `!x`).
type Unary struct {
	Op      lexer.Token
	Operand Expr
}

// Binary is an infix arithmetic or comparison operator.
type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Logical is `and`/`or`, kept distinct from Binary because both
// short-circuit instead of always evaluating both operands.
type Logical struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Grouping is a parenthesized subexpression, kept as its own node so the
// parser can distinguish `(a)` from `a`: only the latter is a valid
// assignment target.
type Grouping struct {
	Inner Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name lexer.Token
}

// Assign stores a new value into an existing binding.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Call invokes a callee with zero or more arguments. Paren is the closing
// `)` token, used to anchor arity/call-target runtime errors.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

// Get reads a property (field or method) off an instance.
type Get struct {
	Object Expr
	Name   lexer.Token
}

// Set writes a field on an instance.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// This refers to the implicitly bound receiver inside a method body.
type This struct {
	Keyword lexer.Token
}

// Super accesses a method on the enclosing class's superclass.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
