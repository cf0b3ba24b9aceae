package interp

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/ctrl"
	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/value"
)

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err
	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, value.Stringify(v))
		return nil
	case *ast.Var:
		var v interface{}
		if s.Initializer != nil {
			var err error
			v, err = in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil
	case *ast.Block:
		return in.ExecuteBlock(s.Statements, environment.New(in.env))
	case *ast.If:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if value.IsTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !value.IsTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				if _, ok := err.(ctrl.Break); ok {
					return nil
				}
				return err
			}
		}
	case *ast.Break:
		return ctrl.Break{}
	case *ast.Function:
		fn := value.NewFunction(s, in.env, false)
		in.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var v interface{}
		if s.Value != nil {
			var err error
			v, err = in.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return ctrl.Return{Value: v}
	case *ast.Class:
		return in.executeClass(s)
	default:
		return runtimeErrorf(0, "unhandled statement")
	}
}

// executeClass evaluates a class declaration: an optional superclass
// (which must itself evaluate to a class), a `super`-containing
// environment pushed only while methods are built if there is one, then
// the class's own methods closing over that environment. The class name
// is declared before the class value is assigned so methods can refer to
// the class by name.
func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *value.Class
	if s.Superclass != nil {
		sc, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		cls, ok := sc.(*value.Class)
		if !ok {
			return runtimeErrorf(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = cls
	}

	in.env.Define(s.Name.Lexeme, nil)

	methodEnv := in.env
	if superclass != nil {
		methodEnv = environment.New(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*value.Function)
	for _, m := range s.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = value.NewFunction(m, methodEnv, isInit)
	}

	class := value.NewClass(s.Name.Lexeme, superclass, methods)
	in.env.Assign(s.Name.Lexeme, class)
	return nil
}
