//go:build wasm

package internal

var defaultGraph *Graph

// DefaultGraph returns the process-wide default graph. Wasm runs a single
// goroutine, so there is no per-goroutine registry to consult.
func DefaultGraph() *Graph {
	if defaultGraph == nil {
		defaultGraph = NewGraph()
	}

	return defaultGraph
}

// ResetDefaultGraph drops the default graph reference without disposing it.
func ResetDefaultGraph() {
	defaultGraph = nil
}
