package curve

import "errors"

// Errors returned by the Call dispatcher.
var (
	// ErrUnknownOp is returned when the requested operation name is not
	// in the defined operation set. The call produces no result.
	ErrUnknownOp = errors.New("curve: unknown operation")

	// ErrArgCount is returned when a known operation is invoked with
	// the wrong number of arguments.
	ErrArgCount = errors.New("curve: wrong argument count")
)
