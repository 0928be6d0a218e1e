package testutils

import (
	"runtime/debug"
	"testing"
)

// Assert(condition) panics if condition is false; Assert(condition, error) panics with panic(error) instead.
// This is used for internal invariants that no caller input should be able to violate.
func Assert(condition bool, err ...interface{}) {
	if len(err) > 1 {
		panic("goldilocks / testutils: Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic("goldilocks / testutils: assertion failed")
		} else {
			panic(err[0])
		}
	}
}

// FatalUnless aborts the running test via t.Fatalf(formatstring, args...) if condition is false.
// A stack trace is printed first, since t.Fatalf alone does not show the failing call chain
// when the check sits inside a shared helper.
func FatalUnless(t *testing.T, condition bool, formatstring string, args ...any) {
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
