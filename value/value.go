// Package value defines Lox's runtime value representation and the
// Callable types (functions, classes, instances) that flow through the
// interpreter. Runtime values are bare Go interface{}: nil, bool, float64,
// string, or one of the pointer types below. The value domain is small
// enough that a type switch on interface{} beats a boxed wrapper interface.
package value

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/environment"
)

// Interp is the minimal slice of the interpreter that Callable
// implementations need in order to run a function or method body. It
// breaks what would otherwise be an import cycle between value and
// interp: value never imports interp, interp implements this interface.
type Interp interface {
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
}

// Callable is anything that can appear on the left of a call expression.
type Callable interface {
	Arity() int
	Call(in Interp, args []interface{}) (interface{}, error)
	String() string
}

// IsTruthy implements Lox's truthiness rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func IsTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's == semantics: nil equals only nil, numbers and
// strings and booleans compare by value, and NaN equals itself (Go's own
// float64 == would say otherwise). Anything else compares by identity.
func IsEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if an, ok := a.(float64); ok {
		bn, ok := b.(float64)
		if !ok {
			return false
		}
		if an != an && bn != bn {
			return true
		}
		return an == bn
	}
	return a == b
}

// Stringify renders a runtime value the way `print` and the REPL do.
// Integer-valued numbers print without a trailing ".0".
func Stringify(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		return text
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
