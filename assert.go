//go:build !debug

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// That is a no-op in release builds.
func That(cond bool, pred string) {}

// Thatf is a no-op in release builds.
func Thatf(cond bool, format string, args ...any) {}

// Func is a no-op in release builds. pred is not called.
func Func(pred func() bool, text string) {}

// NoError is a no-op in release builds.
func NoError(err error) {}

// Unreachable is a no-op in release builds.
func Unreachable(what string) {}
