package internal

// Source is a writable reactive cell. Sources have no dependencies and are
// never dirty; they sit at the roots of the graph.
type Source struct {
	id    NodeID
	graph *Graph

	value  any
	equals func(a, b any) bool

	subs *nodeSet
}

func (g *Graph) NewSource(initial any, equals func(a, b any) bool) *Source {
	if g.disposed {
		panic(ErrGraphDisposed)
	}

	if equals == nil {
		equals = defaultEquals
	}

	s := &Source{
		id:     g.allocID(),
		graph:  g,
		value:  initial,
		equals: equals,
		subs:   newNodeSet(),
	}
	g.signals[s.id] = s

	return s
}

func (s *Source) ID() NodeID {
	return s.id
}

func (s *Source) Graph() *Graph {
	return s.graph
}

// Read returns the current value, capturing an edge to the current consumer
// when tracking is enabled.
func (s *Source) Read() any {
	s.graph.track(s.id, s.subs)
	return s.value
}

// Peek returns the current value without capturing an edge.
func (s *Source) Peek() any {
	return s.value
}

// Write replaces the value and propagates to subscribers. Writing a value
// equal to the current one is a no-op. On a disposed graph the value is
// stored in place and nothing propagates.
func (s *Source) Write(v any) {
	g := s.graph

	if g.disposed {
		s.value = v
		return
	}
	if s.equals(s.value, v) {
		return
	}

	s.value = v
	recordWrite()

	g.enqueueSubscribers(s.subs)
	g.schedule()
}

// Update writes f applied to the current value. The read is untracked: an
// Update inside an effect does not subscribe the effect to s.
func (s *Source) Update(f func(any) any) {
	s.Write(f(s.value))
}

func (s *Source) SubscriberCount() int {
	return s.subs.Len()
}

func (s *Source) subscribers() *nodeSet {
	return s.subs
}

// defaultEquals gates writes with ==. Values that cannot be compared (slices,
// maps, funcs) never count as equal, so writes of such values always
// propagate.
func defaultEquals(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}
