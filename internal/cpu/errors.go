package cpu

import (
	"errors"
	"fmt"
)

// The core has exactly two fault kinds. Both abort the current step and are
// reported to the driver; neither is retried internally.
var (
	// ErrDecode is returned when the byte source cannot supply the bytes an
	// instruction's encoded length requires.
	ErrDecode = errors.New("decode fault")

	// ErrExecution is returned when an executor cannot legally act on the
	// state it was given.
	ErrExecution = errors.New("execution fault")
)

// ErrInvalidOpcode reports execution of one of the reserved opcodes. It is a
// violated precondition signalling ROM corruption or an engine bug, never a
// condition to retry. errors.Is(err, ErrExecution) also holds.
var ErrInvalidOpcode = fmt.Errorf("%w: invalid opcode", ErrExecution)

// decodeErrf wraps a short-read condition as a decode fault.
func decodeErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}

// execErrf wraps an executor contract violation as an execution fault.
func execErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrExecution, fmt.Sprintf(format, args...))
}
