//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var defaultGraphs sync.Map // goroutine id -> *Graph

// DefaultGraph returns the calling goroutine's default graph, lazily
// creating it on first use. Each goroutine observes a distinct default, so
// nodes are never implicitly shared across goroutines.
func DefaultGraph() *Graph {
	gid := goid.Get()

	if g, ok := defaultGraphs.Load(gid); ok {
		return g.(*Graph)
	}

	g := NewGraph()
	defaultGraphs.Store(gid, g)
	return g
}

// ResetDefaultGraph drops the calling goroutine's default graph reference
// without disposing it. The next DefaultGraph call creates a fresh graph.
func ResetDefaultGraph() {
	defaultGraphs.Delete(goid.Get())
}
