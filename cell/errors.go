package cell

import (
	"errors"
	"fmt"
)

// ErrNotifyDepth is wrapped by the DepthError raised when one cell is notified
// again while more than MaxNotifyDepth of its own dispatches are still running,
// which means a callback keeps writing to a cell upstream of itself.
var ErrNotifyDepth = errors.New("cell: notification depth exceeded")

// MaxNotifyDepth bounds how often a single cell may re-enter its own
// notification. Nesting across distinct cells, as in a long chain, is not
// limited.
var MaxNotifyDepth = 10000

// DepthError is the panic value raised by the notification depth guard.
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: %d nested notifications", ErrNotifyDepth, e.Depth)
}

func (e *DepthError) Unwrap() error {
	return ErrNotifyDepth
}
