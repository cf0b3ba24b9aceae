package value

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/ctrl"
	"github.com/akashmaji946/lox-mix/environment"
)

// Function is a user-declared Lox function or method. The closure
// captures the environment in which the function was declared.
type Function struct {
	Decl          *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction builds a Function closing over env.
func NewFunction(decl *ast.Function, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Decl: decl, Closure: closure, IsInitializer: isInitializer}
}

// Bind returns a copy of the function with a fresh environment that binds
// `this` to instance, one level inside the closure. This is how a bound
// method call sees the receiver without mutating the method shared by
// every instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) Call(in Interp, args []interface{}) (result interface{}, err error) {
	env := environment.New(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err = in.ExecuteBlock(f.Decl.Body, env)
	if err != nil {
		if ret, ok := err.(ctrl.Return); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this"), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}
