/*
File    : golox/object/class.go

Class is golox's representation of a Lox class: a callable whose
call constructs an Instance and runs its initializer. Shaped like
Function (a Callable Value) for consistency with the rest of this
package.
*/
package object

// Class holds a method table by name. Equality is by identity, same
// as Function.
type Class struct {
	Name    string
	Methods map[string]*Function
}

func (c *Class) String() string { return c.Name }

// Arity is the arity of `init`, or 0 if the class has no initializer.
func (c *Class) Arity() int {
	if init, ok := c.Methods["init"]; ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance and, if the class defines `init`,
// binds and invokes it with args before returning the instance.
// The initializer's own return value is discarded;
// Function.Call already arranges for a bound init to yield `this`.
func (c *Class) Call(interp interface{}, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.Methods["init"]; ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// FindMethod looks up a method by name, not falling back to any
// enclosing scope: golox has no `super`/inheritance.
func (c *Class) FindMethod(name string) (*Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

var (
	_ Callable = (*Class)(nil)
	_ Callable = (*NativeFunction)(nil)
	_ Callable = (*Function)(nil)
)
