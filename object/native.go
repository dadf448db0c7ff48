/*
File    : golox/object/native.go

golox's one native function: clock(), returning a float64 Num since
Lox has no integer/float distinction.
*/
package object

import "time"

// NewClock builds golox's only native function: 0-arity, returns
// wall-clock seconds since the Unix epoch.
func NewClock() *NativeFunction {
	return &NativeFunction{
		FnName: "clock",
		Arty:   0,
		Fn: func(args []Value) (Value, error) {
			return Num(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
