package internal

// Effect is a re-runnable side effect. Effects are leaves of the graph: they
// subscribe to producers but have no subscribers of their own. Each run
// re-captures the dependency set from scratch.
type Effect struct {
	id    NodeID
	graph *Graph

	fn      func()
	cleanup func()

	deps *nodeSet

	dirty    bool
	disposed bool
}

// NewEffect registers and immediately runs a new effect, so its initial
// dependencies are captured synchronously, even inside a batch.
func (g *Graph) NewEffect(fn func()) *Effect {
	if g.disposed {
		panic(ErrGraphDisposed)
	}

	e := &Effect{
		id:    g.allocID(),
		graph: g,
		fn:    fn,
		dirty: true,
		deps:  newNodeSet(),
	}
	g.effects[e.id] = e

	g.runEffect(e)

	return e
}

func (e *Effect) ID() NodeID {
	return e.id
}

func (e *Effect) Graph() *Graph {
	return e.graph
}

// Dispose runs the pending cleanup, unsubscribes from every producer and
// removes the effect from the graph. Idempotent; a disposed effect never
// runs again.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	g := e.graph

	if e.cleanup != nil {
		cleanup := e.cleanup
		e.cleanup = nil
		g.runCleanup(e.id, cleanup)
	}

	for _, depID := range e.deps.Values() {
		if p, ok := g.signals[depID]; ok {
			p.subscribers().Remove(e.id)
		}
	}
	e.deps.Clear()

	e.disposed = true
	delete(g.effects, e.id)
}

func (e *Effect) IsDisposed() bool {
	return e.disposed
}

func (e *Effect) IsDirty() bool {
	return e.dirty
}

func (e *Effect) DependencyCount() int {
	return e.deps.Len()
}
