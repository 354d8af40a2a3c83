package math

import (
	"fmt"

	"github.com/spaghettifunk/extramath/engine/core"
)

// PreconditionError is the panic value raised by a failed debug precondition.
type PreconditionError struct {
	Op  string
	Arg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Arg, core.ErrNotNormalized)
}

func (e *PreconditionError) Unwrap() error {
	return core.ErrNotNormalized
}

// assertNormalized is the one precondition check shared by every operation
// that requires unit-length input. It is compiled out unless the module is
// built with -tags extramath_debug.
func assertNormalized(normalized bool, op, arg string) {
	if !debugChecks || normalized {
		return
	}
	err := &PreconditionError{Op: op, Arg: arg}
	core.LogError("precondition violated: %s", err.Error())
	panic(err)
}

func indexPanic(kind string, index, max int) {
	panic(fmt.Errorf("%s index %d (valid 0..%d): %w", kind, index, max, core.ErrIndexOutOfRange))
}
