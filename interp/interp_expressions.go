package interp

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/value"
)

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.evaluate(e.Inner)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Variable:
		return in.lookupVariable(e.Name, e)
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		return in.evalGet(e)
	case *ast.Set:
		return in.evalSet(e)
	case *ast.This:
		return in.lookupVariable(e.Keyword, e)
	case *ast.Super:
		return in.evalSuper(e)
	default:
		return nil, runtimeErrorf(0, "unhandled expression")
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (interface{}, error) {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case lexer.MINUS:
		n, ok := operand.(float64)
		if !ok {
			return nil, runtimeErrorf(e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return !value.IsTruthy(operand), nil
	}
	return nil, runtimeErrorf(e.Op.Line, "Unknown unary operator.")
}

func (in *Interpreter) evalLogical(e *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Type == lexer.OR {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case lexer.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		// A single string operand is enough for concatenation: the other
		// side is rendered the way `print` would render it.
		_, ls := left.(string)
		_, rs := right.(string)
		if ls || rs {
			return value.Stringify(left) + value.Stringify(right), nil
		}
		return nil, runtimeErrorf(e.Op.Line, "Operands must be two numbers or two strings.")
	case lexer.MINUS:
		ln, rn, err := in.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case lexer.STAR:
		ln, rn, err := in.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case lexer.SLASH:
		ln, rn, err := in.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, runtimeErrorf(e.Op.Line, "Division by zero.")
		}
		return ln / rn, nil
	case lexer.GREATER:
		ln, rn, err := in.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case lexer.GREATER_EQUAL:
		ln, rn, err := in.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case lexer.LESS:
		ln, rn, err := in.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case lexer.LESS_EQUAL:
		ln, rn, err := in.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case lexer.EQUAL_EQUAL:
		return value.IsEqual(left, right), nil
	case lexer.BANG_EQUAL:
		return !value.IsEqual(left, right), nil
	}
	return nil, runtimeErrorf(e.Op.Line, "Unknown binary operator.")
}

func (in *Interpreter) numberOperands(line int, left, right interface{}) (float64, float64, error) {
	ln, ok := left.(float64)
	if !ok {
		return 0, 0, runtimeErrorf(line, "Operands must be numbers.")
	}
	rn, ok := right.(float64)
	if !ok {
		return 0, 0, runtimeErrorf(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

// lookupVariable resolves a variable reference via the resolver's hop
// count when one was recorded, falling back to a dynamic lookup in
// globals for anything the resolver left unresolved (i.e. genuinely
// global references).
func (in *Interpreter) lookupVariable(name lexer.Token, expr ast.Expr) (interface{}, error) {
	if hop, ok := in.locals[expr]; ok {
		return in.env.GetAt(hop, name.Lexeme), nil
	}
	v, ok := in.globals.Get(name.Lexeme)
	if !ok {
		return nil, runtimeErrorf(name.Line, "Undefined variable '"+name.Lexeme+"'.")
	}
	return v, nil
}

func (in *Interpreter) evalAssign(e *ast.Assign) (interface{}, error) {
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if hop, ok := in.locals[e]; ok {
		in.env.AssignAt(hop, e.Name.Lexeme, v)
		return v, nil
	}
	if !in.globals.Assign(e.Name.Lexeme, v) {
		return nil, runtimeErrorf(e.Name.Line, "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.Set) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have fields.")
	}
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

// evalSuper resolves `super.method`: the superclass was bound at the hop
// recorded for the `super` reference, and `this` always lives exactly one
// scope closer.
func (in *Interpreter) evalSuper(e *ast.Super) (interface{}, error) {
	hop := in.locals[e]
	superVal := in.env.GetAt(hop, "super")
	super, ok := superVal.(*value.Class)
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "'super' did not resolve to a class.")
	}

	thisVal := in.env.GetAt(hop-1, "this")
	instance, ok := thisVal.(*value.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Keyword.Line, "'this' did not resolve to an instance.")
	}

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Method.Line, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
