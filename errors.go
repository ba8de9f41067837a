package reactive

import "github.com/statekit/reactive/internal"

var (
	// ErrGraphDisposed is panicked when creating nodes on a disposed graph.
	ErrGraphDisposed = internal.ErrGraphDisposed

	// ErrInvalidTarget is panicked when writing to a computed.
	ErrInvalidTarget = internal.ErrInvalidTarget
)

// CycleError reports a computed whose recompute transitively depends on
// itself; its Chain names the offending node ids in order.
type CycleError = internal.CycleError
