package testutils

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckPanic runs fun(args...) and reports whether a panic occurred, swallowing the panic itself.
// fun is called through the reflect package, so args must be assignable to fun's parameter types.
//
// Panics originating *inside* the reflect package (i.e. from calling CheckPanic with a wrong
// number or type of args) are re-raised rather than swallowed: by convention such panic
// messages start with "reflect", and treating them as "fun panicked" would mask bugs in the
// test itself.
//
// This function is only used in testing.
func CheckPanic(fun interface{}, args ...interface{}) (didPanic bool) {
	didPanic = true
	funValue := reflect.ValueOf(fun)
	if funValue.Kind() != reflect.Func {
		panic("goldilocks / testutils: CheckPanic's first argument must be a function")
	}
	funArgs := make([]reflect.Value, len(args))
	for i := 0; i < len(args); i++ {
		funArgs[i] = reflect.ValueOf(args[i])
	}
	defer func() {
		err := recover()
		if err == nil {
			return
		}
		var errstring string
		switch err := err.(type) {
		case string:
			errstring = err
		case error:
			errstring = err.Error()
		case fmt.Stringer:
			errstring = err.String()
		default:
			return
		}
		if strings.HasPrefix(errstring, "reflect") {
			panic(err)
		}
	}()
	funValue.Call(funArgs)
	didPanic = false
	return
}
