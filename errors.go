package extend

import "errors"

var (
	// ErrUnknownOp is returned when an operation name was never declared by the
	// component, either at invocation time or when attaching an extension
	// handling it.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrDuplicateOp is returned when a component declares twice the same
	// operation name.
	ErrDuplicateOp = errors.New("operation already declared")

	// ErrBoundElsewhere is returned when attaching an extension that is already
	// attached to a different component.
	ErrBoundElsewhere = errors.New("extension bound to another component")
)
