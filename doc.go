/*
Package assert provides debug assertions that are compiled out of
release builds.

Assertions are enabled with the debug build tag:

	go build -tags debug

When the tag is omitted every function in this package has an empty
body, so call sites cost nothing after inlining and no text derived
from the assertion remains in the binary.

A failing assertion writes a single line

	<file>:<line>: Assertion failed: <predicate>

to standard error, where <file>:<line> is the call site, and then stops
the thread with runtime.Breakpoint. Under a debugger that is an
ordinary breakpoint and execution can be resumed past it; without one
the process dies of the trap signal. The package takes no position on
which happens.

Go evaluates call arguments even when the called body is empty, so the
condition passed to That or Thatf is still computed in release builds.
That is fine for cheap predicates. Guard anything expensive with
Enabled, or hand the predicate to Func so it is never run:

	if assert.Enabled {
		assert.That(index.isSorted(), "index.isSorted()")
	}

	assert.Func(index.isSorted, "index.isSorted()")
*/
package assert
