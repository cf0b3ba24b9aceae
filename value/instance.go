package value

import "fmt"

// Instance is a runtime instance of a Class, holding its own field
// bindings separately from the class's (shared) methods.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

// NewInstance allocates an instance with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// Get looks up a property: fields shadow methods, and a found method is
// bound to this instance before being returned.
func (i *Instance) Get(name string) (interface{}, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set always writes to this instance's own fields, creating a new field
// if it didn't already exist; Lox classes have no fixed field list.
func (i *Instance) Set(name string, v interface{}) {
	i.Fields[name] = v
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}
