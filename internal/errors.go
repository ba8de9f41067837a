package internal

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrGraphDisposed is panicked by operations that would create reactive
	// structure on a disposed graph.
	ErrGraphDisposed = errors.New("reactive: graph disposed")

	// ErrInvalidTarget is panicked when writing to a computed.
	ErrInvalidTarget = errors.New("reactive: cannot write to a computed")
)

// CycleError reports a computed whose recompute depends on itself. Chain
// holds the in-progress compute stack ending with the offending node.
type CycleError struct {
	Chain []NodeID
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, id := range e.Chain {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	return "reactive: dependency cycle detected: " + strings.Join(parts, " -> ")
}
