package internal

// Computed is a memoized pure function of other nodes' values. It starts
// dirty with no committed value; the first read computes it. A dirty
// computed recomputes lazily on read, re-capturing its dependency set from
// scratch each time so conditional reads re-subscribe correctly.
type Computed struct {
	id    NodeID
	graph *Graph

	compute func() any
	value   any
	dirty   bool

	deps *nodeSet
	subs *nodeSet
}

func (g *Graph) NewComputed(compute func() any) *Computed {
	if g.disposed {
		panic(ErrGraphDisposed)
	}

	c := &Computed{
		id:      g.allocID(),
		graph:   g,
		compute: compute,
		dirty:   true,
		deps:    newNodeSet(),
		subs:    newNodeSet(),
	}
	g.signals[c.id] = c

	return c
}

func (c *Computed) ID() NodeID {
	return c.id
}

func (c *Computed) Graph() *Graph {
	return c.graph
}

// Read recomputes if dirty, then returns the cached value, capturing an edge
// to the current consumer. On a disposed graph the last cached value is
// returned without recompute.
func (c *Computed) Read() any {
	g := c.graph

	if c.dirty && !g.disposed {
		g.recompute(c)
	}
	g.track(c.id, c.subs)

	return c.value
}

// Peek returns the last successfully committed value without recomputing and
// without capturing an edge. Undefined before the first successful read.
func (c *Computed) Peek() any {
	return c.value
}

// Write always panics: computeds derive their value.
func (c *Computed) Write(v any) {
	panic(ErrInvalidTarget)
}

func (c *Computed) IsDirty() bool {
	return c.dirty
}

func (c *Computed) DependencyCount() int {
	return c.deps.Len()
}

func (c *Computed) SubscriberCount() int {
	return c.subs.Len()
}

func (c *Computed) subscribers() *nodeSet {
	return c.subs
}
