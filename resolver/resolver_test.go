package resolver

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/lox-mix/diagnostics"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/stretchr/testify/assert"
)

func resolveSource(t *testing.T, src string) (*diagnostics.Sink, *Resolver) {
	t.Helper()
	sink := diagnostics.NewSink(&bytes.Buffer{})
	scanner := lexer.NewScanner(src)
	tokens, _ := scanner.ScanTokens()
	p := parser.NewParser(tokens, sink)
	stmts := p.Parse()

	r := New(sink)
	r.Resolve(stmts)
	return sink, r
}

func TestResolver_ReadInOwnInitializer(t *testing.T) {
	sink, _ := resolveSource(t, `var a = 1; { var a = a; }`)
	assert.True(t, sink.HadResolve())
}

func TestResolver_ReturnOutsideFunction(t *testing.T) {
	sink, _ := resolveSource(t, `return 1;`)
	assert.True(t, sink.HadResolve())
}

func TestResolver_ThisOutsideClass(t *testing.T) {
	sink, _ := resolveSource(t, `print this;`)
	assert.True(t, sink.HadResolve())
}

func TestResolver_ClassInheritsItself(t *testing.T) {
	sink, _ := resolveSource(t, `class Oops < Oops {}`)
	assert.True(t, sink.HadResolve())
}

func TestResolver_SuperWithoutSuperclass(t *testing.T) {
	sink, _ := resolveSource(t, `class A { m() { super.m(); } }`)
	assert.True(t, sink.HadResolve())
}

func TestResolver_ValidProgramHasNoErrors(t *testing.T) {
	sink, _ := resolveSource(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { print this.name; }
		}
		var g = Greeter("world");
		g.greet();
	`)
	assert.False(t, sink.HadResolve())
}

func TestResolver_LocalHopDistance(t *testing.T) {
	_, r := resolveSource(t, `
		var a = "global";
		{
			var a = "outer";
			{
				print a;
			}
		}
	`)
	found := false
	for _, hop := range r.Locals() {
		// `print a` sits one block inside the block that declares the
		// local `a`, so its recorded distance is 1.
		if hop == 1 {
			found = true
		}
	}
	assert.True(t, found)
}
