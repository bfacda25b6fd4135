package util

import (
	"fmt"
	"strings"
	"testing"
)

// InvariantError is raised (via panic) when a caller breaks a contract the
// generator relies on, such as declaring that pushed text has no line break
// when it does.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// AssertionsEnabled reports whether invariant checks run. They are on in
// test binaries and in builds tagged vapordebug; release builds trust the
// caller.
func AssertionsEnabled() bool {
	return debugBuild || testing.Testing()
}

// Invariant panics with an *InvariantError when cond is false and
// assertions are enabled.
func Invariant(cond bool, op, format string, args ...any) {
	if cond || !AssertionsEnabled() {
		return
	}
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// EscapeNewlines makes line breaks visible in diagnostic messages.
func EscapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
