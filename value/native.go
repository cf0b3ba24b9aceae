package value

// NativeFunction wraps a Go function as a Lox callable. The interpreter
// seeds the global environment with these; once bound, each behaves like
// any other Callable.
type NativeFunction struct {
	Name  string
	NArgs int
	Fn    func(args []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.NArgs }

func (n *NativeFunction) Call(in Interp, args []interface{}) (interface{}, error) {
	return n.Fn(args)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}
