// Package extend implements a run-time extension protocol: a Component declares
// a fixed set of named extendable operations, and Extension objects attach to a
// component instance to react after each operation's base implementation ran.
//
// The component never needs to know which extensions exist when its operations
// are declared; extensions register themselves and are notified in attachment
// order.
package extend

type (
	// Op identifies an extendable operation declared by a Component.
	Op string

	// BaseFunc is the base implementation of an extendable operation.
	BaseFunc func(args ...any) (any, error)

	// Handler is the reaction an Extension registers for one extendable operation.
	//
	// A handler receives the same arguments as the base invocation, never its
	// result. Its only output is an error, interpreted according to the
	// component's fault policy.
	Handler func(args ...any) error

	// Middleware wraps the base implementation of extendable operations.
	// The returned BaseFunc runs in place of next; extensions are notified only
	// after the whole wrapped chain completed.
	Middleware func(op Op, next BaseFunc) BaseFunc

	// FaultPolicy decides what a component does when an extension handler
	// returns an error during dispatch.
	FaultPolicy int
)

const (
	// FailFast aborts the dispatch on the first handler error: remaining
	// extensions are not notified and the error is propagated to the caller of
	// Invoke. The base result is already computed at that point, and lost.
	FailFast FaultPolicy = iota

	// Observe logs handler errors and keeps notifying the remaining extensions.
	// Invoke still returns the base result.
	Observe
)

func (p FaultPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case Observe:
		return "observe"
	default:
		return "unknown"
	}
}
