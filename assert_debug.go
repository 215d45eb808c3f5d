//go:build debug

package assert

import (
	"fmt"
	"os"
	"runtime"
)

// Enabled reports whether assertions are compiled in.
const Enabled = true

// That checks cond and, if it is false, reports pred as the failed
// predicate and traps. pred should be the source text of the condition.
func That(cond bool, pred string) {
	if cond {
		return
	}
	fail(pred)
}

// Thatf is That with a formatted predicate. The arguments are only
// formatted on failure.
func Thatf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	fail(fmt.Sprintf(format, args...))
}

// Func calls pred exactly once and fails if it returns false. Unlike
// the condition argument of That, pred is never run in release builds,
// so side effects inside it stay out of release binaries.
func Func(pred func() bool, text string) {
	if pred() {
		return
	}
	fail(text)
}

// NoError fails if err is non-nil.
func NoError(err error) {
	if err == nil {
		return
	}
	fail("err == nil (" + err.Error() + ")")
}

// Unreachable marks a branch that must never execute.
func Unreachable(what string) {
	fail("unreachable: " + what)
}

// fail writes the diagnostic for the frame two levels up (the caller
// of the exported function) and traps. Kept out of line so the success
// path of every assertion is a single branch. The write error is
// ignored; a broken stderr must not skip the trap.
//
//go:noinline
func fail(pred string) {
	file, line := "???", 0
	if _, f, l, ok := runtime.Caller(2); ok {
		file, line = f, l
	}
	fmt.Fprintf(os.Stderr, "%s:%d: Assertion failed: %s\n", file, line, pred)
	runtime.Breakpoint()
}
