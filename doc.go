// Package reactive implements a reactive state graph: writable signals,
// lazily memoized computeds derived from them, and effects that re-run when
// the values they observed change.
//
// Dependencies are captured automatically: reading a node inside a computed
// or an effect subscribes the consumer to that node, and every run captures
// the dependency set from scratch, so conditional reads re-subscribe
// correctly. Propagation is push-based for dirtiness and pull-based for
// values: a write marks transitive dependents dirty and re-runs affected
// effects exactly once, while computed values recompute only when read.
//
// Every node belongs to a Graph. Graphs are strictly single-threaded and
// fully isolated from one another; the per-goroutine Default graph gives
// each goroutine its own world.
//
//	g := reactive.New()
//	count := reactive.NewSignal(g, 0)
//	double := reactive.NewComputed(g, func() int { return count.Read() * 2 })
//
//	reactive.NewEffect(g, func() {
//		fmt.Println("double is", double.Read())
//	})
//
//	count.Write(21) // effect prints "double is 42"
package reactive
