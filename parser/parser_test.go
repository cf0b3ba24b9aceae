package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/diagnostics"
	"github.com/akashmaji946/lox-mix/lexer"
)

func parseSource(t *testing.T, src string) ([]ast.Stmt, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink(&bytes.Buffer{})
	scanner := lexer.NewScanner(src)
	tokens, errs := scanner.ScanTokens()
	assert.Empty(t, errs)
	par := NewParser(tokens, sink)
	return par.Parse(), sink
}

func TestParser_Parse_BinaryPrecedence(t *testing.T) {
	stmts, sink := parseSource(t, `1 + 2 * 3;`)
	assert.False(t, sink.HadSyntax())
	assert.Equal(t, 1, len(stmts))

	exprStmt, can := stmts[0].(*ast.Expression)
	assert.True(t, can)
	add, can := exprStmt.Expr.(*ast.Binary)
	assert.True(t, can)
	assert.Equal(t, lexer.PLUS, add.Op.Type)

	// The multiplication binds tighter and ends up as the right operand.
	mul, can := add.Right.(*ast.Binary)
	assert.True(t, can)
	assert.Equal(t, lexer.STAR, mul.Op.Type)
}

func TestParser_Parse_AssignmentIsRightAssociative(t *testing.T) {
	stmts, sink := parseSource(t, `a = b = 1;`)
	assert.False(t, sink.HadSyntax())

	exprStmt := stmts[0].(*ast.Expression)
	outer, can := exprStmt.Expr.(*ast.Assign)
	assert.True(t, can)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, can := outer.Value.(*ast.Assign)
	assert.True(t, can)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_Parse_PropertyAssignmentBecomesSet(t *testing.T) {
	stmts, sink := parseSource(t, `obj.field = 1;`)
	assert.False(t, sink.HadSyntax())

	exprStmt := stmts[0].(*ast.Expression)
	set, can := exprStmt.Expr.(*ast.Set)
	assert.True(t, can)
	assert.Equal(t, "field", set.Name.Lexeme)
}

func TestParser_Parse_InvalidAssignmentTargetReportsButContinues(t *testing.T) {
	stmts, sink := parseSource(t, `1 + 2 = 3;`)
	assert.True(t, sink.HadSyntax())
	// The already-parsed left-hand side survives as the statement.
	assert.Equal(t, 1, len(stmts))
}

func TestParser_Parse_ForDesugarsToWhile(t *testing.T) {
	stmts, sink := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.False(t, sink.HadSyntax())
	assert.Equal(t, 1, len(stmts))

	block, can := stmts[0].(*ast.Block)
	assert.True(t, can)
	assert.Equal(t, 2, len(block.Statements))

	_, can = block.Statements[0].(*ast.Var)
	assert.True(t, can)
	loop, can := block.Statements[1].(*ast.While)
	assert.True(t, can)

	// The increment is appended to the loop body inside another block.
	body, can := loop.Body.(*ast.Block)
	assert.True(t, can)
	assert.Equal(t, 2, len(body.Statements))
}

func TestParser_Parse_ForWithoutConditionLoopsForever(t *testing.T) {
	stmts, sink := parseSource(t, `for (;;) break;`)
	assert.False(t, sink.HadSyntax())

	loop, can := stmts[0].(*ast.While)
	assert.True(t, can)
	cond, can := loop.Cond.(*ast.Literal)
	assert.True(t, can)
	assert.Equal(t, true, cond.Value)
}

func TestParser_Parse_BreakOutsideLoopIsError(t *testing.T) {
	_, sink := parseSource(t, `break;`)
	assert.True(t, sink.HadSyntax())
}

func TestParser_Parse_BreakInsideLoopIsFine(t *testing.T) {
	_, sink := parseSource(t, `while (true) { break; }`)
	assert.False(t, sink.HadSyntax())
}

func TestParser_Parse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, sink := parseSource(t, `class B < A { init(x) {} go() {} }`)
	assert.False(t, sink.HadSyntax())

	class, can := stmts[0].(*ast.Class)
	assert.True(t, can)
	assert.Equal(t, "B", class.Name.Lexeme)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	assert.Equal(t, 2, len(class.Methods))
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
	assert.Equal(t, 1, len(class.Methods[0].Params))
}

func TestParser_Parse_TooManyArgumentsReportsButContinues(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("1")
	}
	sb.WriteString(");")

	stmts, sink := parseSource(t, sb.String())
	assert.True(t, sink.HadSyntax())
	// The call itself still parses with all 256 arguments intact.
	exprStmt := stmts[0].(*ast.Expression)
	call, can := exprStmt.Expr.(*ast.Call)
	assert.True(t, can)
	assert.Equal(t, 256, len(call.Arguments))
}

func TestParser_Parse_SynchronizationRecoversFollowingStatements(t *testing.T) {
	stmts, sink := parseSource(t, `var = 1; var ok = 2;`)
	assert.True(t, sink.HadSyntax())
	// The malformed declaration is dropped, the next one survives.
	assert.Equal(t, 1, len(stmts))
	decl, can := stmts[0].(*ast.Var)
	assert.True(t, can)
	assert.Equal(t, "ok", decl.Name.Lexeme)
}

func TestParser_Parse_SuperRequiresMethodName(t *testing.T) {
	_, sink := parseSource(t, `class B < A { go() { return super; } }`)
	assert.True(t, sink.HadSyntax())
}
